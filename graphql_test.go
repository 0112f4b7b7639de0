package graphql_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	graphql "github.com/vertexql/graphql"
)

func TestGraphqlHandlerInvalidJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/graphql", bytes.NewBufferString("not-json"))
	w := httptest.NewRecorder()
	graphql.GraphqlHandler(w, req)
	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", resp.StatusCode)
	}
}

func TestGraphqlHandlerEmptyQuery(t *testing.T) {
	payload := map[string]interface{}{
		"query": "",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/graphql", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	graphql.GraphqlHandler(w, req)
	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for empty query, got %d", resp.StatusCode)
	}
}

func TestLexerIllegalCharacter(t *testing.T) {
	input := []byte("^")
	l, err := graphql.NewLexer(input)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	_, advErr := l.Advance()
	if advErr == nil {
		t.Fatal("expected an error for an illegal character")
	}
	if _, ok := advErr.(*graphql.SyntaxError); !ok {
		t.Errorf("expected *graphql.SyntaxError, got %T", advErr)
	}
}

func TestOperationDefinitionImplicitQuery(t *testing.T) {
	doc, err := graphql.Parse([]byte(`{ hello }`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Definitions) != 1 {
		t.Fatal("expected one definition for implicit query")
	}
	op, ok := doc.Definitions[0].(*graphql.OperationDefinition)
	if !ok {
		t.Fatal("expected operation definition")
	}
	if op.Operation != "query" {
		t.Errorf("expected operation to be 'query', got %q", op.Operation)
	}
}

func TestExecutorWithRegisteredResolver(t *testing.T) {
	doc, err := graphql.Parse([]byte(`{ greet }`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec := graphql.NewExecutor()
	exec.RegisterQueryResolver("greet", func(source interface{}, args map[string]interface{}) (interface{}, error) {
		return "Hello, World!", nil
	})

	result, err := exec.Execute(doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected data to be a map")
	}

	greet, ok := data["greet"].(string)
	if !ok || greet != "Hello, World!" {
		t.Errorf("expected greet to be 'Hello, World!', got %v", data["greet"])
	}
}

func TestParseVariableDefinitions(t *testing.T) {
	doc, err := graphql.Parse([]byte(`query ($var: Int!) { hello }`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Definitions) != 1 {
		t.Fatalf("expected one definition, got %d", len(doc.Definitions))
	}
	op, ok := doc.Definitions[0].(*graphql.OperationDefinition)
	if !ok {
		t.Fatal("expected an operation definition")
	}
	if len(op.VariableDefinitions) != 1 {
		t.Fatalf("expected one variable definition, got %d", len(op.VariableDefinitions))
	}
	varDef := op.VariableDefinitions[0]
	if varDef.Variable != "var" {
		t.Errorf("expected variable name 'var', got %q", varDef.Variable)
	}
	if varDef.Type.Name != "Int" {
		t.Errorf("expected type 'Int', got %q", varDef.Type.Name)
	}
	if !varDef.Type.NonNull {
		t.Errorf("expected NonNull to be true")
	}
}

func TestParseDirectivesOnFieldAndOperation(t *testing.T) {
	doc, err := graphql.Parse([]byte(`query @cached { hello @upper(case: true) }`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op := doc.Definitions[0].(*graphql.OperationDefinition)
	if len(op.Directives) != 1 || op.Directives[0].Name != "cached" {
		t.Fatalf("expected one operation directive 'cached', got %+v", op.Directives)
	}
	field := op.SelectionSet.Selections[0].(*graphql.Field)
	if len(field.Directives) != 1 || field.Directives[0].Name != "upper" {
		t.Fatalf("expected one field directive 'upper', got %+v", field.Directives)
	}
	if len(field.Directives[0].Arguments) != 1 || field.Directives[0].Arguments[0].Name != "case" {
		t.Fatalf("expected directive argument 'case', got %+v", field.Directives[0].Arguments)
	}
}

func TestParseUnionTypeDefinition(t *testing.T) {
	doc, err := graphql.Parse([]byte(`union SearchResult = Book | Movie`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	union, ok := doc.Definitions[0].(*graphql.UnionTypeDefinition)
	if !ok {
		t.Fatal("expected a union type definition")
	}
	if union.Name != "SearchResult" {
		t.Errorf("expected name 'SearchResult', got %q", union.Name)
	}
	if len(union.Members) != 2 || union.Members[0] != "Book" || union.Members[1] != "Movie" {
		t.Errorf("expected members [Book Movie], got %v", union.Members)
	}
}

func TestParseTypeImplementsInterfaces(t *testing.T) {
	doc, err := graphql.Parse([]byte(`type User implements Node & Timestamped { id: ID }`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	typeDef, ok := doc.Definitions[0].(*graphql.TypeDefinition)
	if !ok {
		t.Fatal("expected a type definition")
	}
	if len(typeDef.Interfaces) != 2 || typeDef.Interfaces[0] != "Node" || typeDef.Interfaces[1] != "Timestamped" {
		t.Errorf("expected interfaces [Node Timestamped], got %v", typeDef.Interfaces)
	}
}

func TestSubscriptionExecutor(t *testing.T) {
	exec := graphql.NewExecutor()

	// Create a simple subscription
	ch := make(chan interface{}, 1)
	ch <- "event1"
	close(ch)

	exec.RegisterSubscriptionResolver("testSub", func(source interface{}, args map[string]interface{}) (interface{}, error) {
		return ch, nil
	})

	field := &graphql.Field{Name: "testSub"}
	subCh, err := exec.ExecuteSubscription(field, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case event := <-subCh:
		if event != "event1" {
			t.Errorf("expected 'event1', got %v", event)
		}
	case <-time.After(1 * time.Second):
		t.Error("timed out waiting for subscription event")
	}
}

func TestGraphqlHandlerNilVariables(t *testing.T) {
	graphql.RegisterQueryResolver("greet", func(source interface{}, args map[string]interface{}) (interface{}, error) {
		return "hi", nil
	})
	payload := map[string]interface{}{
		"query":     "{ greet }",
		"variables": nil,
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/graphql", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	graphql.GraphqlHandler(w, req)
	resp := w.Result()
	if resp.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestLexerStringToken(t *testing.T) {
	input := []byte(`"hello world"`)
	l, err := graphql.NewLexer(input)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	if _, err := l.Advance(); err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if l.Kind() != graphql.String || string(l.Value()) != "hello world" {
		t.Errorf("expected string token with value 'hello world', got Kind: %s, Value: %q", l.Kind(), l.Value())
	}
}

func TestOperationDefinitionWithNameAndVariables(t *testing.T) {
	doc, err := graphql.Parse([]byte(`query MyQuery($id: Int) { hello }`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Definitions) != 1 {
		t.Fatalf("expected one definition, got %d", len(doc.Definitions))
	}
	op, ok := doc.Definitions[0].(*graphql.OperationDefinition)
	if !ok {
		t.Fatal("expected an operation definition")
	}
	if op.Name != "MyQuery" {
		t.Errorf("expected operation name 'MyQuery', got %q", op.Name)
	}
	if len(op.VariableDefinitions) != 1 {
		t.Errorf("expected one variable definition, got %d", len(op.VariableDefinitions))
	}
}
