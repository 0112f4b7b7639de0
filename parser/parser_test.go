package parser

import (
	"testing"

	"github.com/vertexql/graphql/ast"
	"github.com/vertexql/graphql/lexer"
)

func mustParse(t *testing.T, src string) *ast.Document {
	t.Helper()
	l, err := lexer.New([]byte(src))
	if err != nil {
		t.Fatalf("unexpected lexer construction error: %v", err)
	}
	p := New(l)
	doc, err := p.ParseDocument()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return doc
}

func TestParseImplicitQuery(t *testing.T) {
	doc := mustParse(t, `{ hero { name } }`)
	if len(doc.Definitions) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(doc.Definitions))
	}
	op, ok := doc.Definitions[0].(*ast.OperationDefinition)
	if !ok {
		t.Fatal("expected an operation definition")
	}
	if op.Operation != "query" {
		t.Errorf("expected operation 'query', got %q", op.Operation)
	}
	if len(op.SelectionSet.Selections) != 1 {
		t.Fatalf("expected 1 selection, got %d", len(op.SelectionSet.Selections))
	}
	field := op.SelectionSet.Selections[0].(*ast.Field)
	if field.Name != "hero" {
		t.Errorf("expected field 'hero', got %q", field.Name)
	}
	if field.SelectionSet == nil || len(field.SelectionSet.Selections) != 1 {
		t.Fatal("expected hero to have a nested selection set of 1 field")
	}
	nested := field.SelectionSet.Selections[0].(*ast.Field)
	if nested.Name != "name" {
		t.Errorf("expected nested field 'name', got %q", nested.Name)
	}
}

func TestParseNamedMutationWithArguments(t *testing.T) {
	doc := mustParse(t, `mutation CreateUser($name: String!) { createUser(name: $name, age: 30) { id } }`)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	if op.Operation != "mutation" || op.Name != "CreateUser" {
		t.Fatalf("expected mutation 'CreateUser', got %q %q", op.Operation, op.Name)
	}
	if len(op.VariableDefinitions) != 1 || op.VariableDefinitions[0].Variable != "name" {
		t.Fatalf("expected variable 'name', got %+v", op.VariableDefinitions)
	}
	if !op.VariableDefinitions[0].Type.NonNull || op.VariableDefinitions[0].Type.Name != "String" {
		t.Fatalf("expected non-null String, got %+v", op.VariableDefinitions[0].Type)
	}
	field := op.SelectionSet.Selections[0].(*ast.Field)
	if field.Name != "createUser" {
		t.Errorf("expected field 'createUser', got %q", field.Name)
	}
	if len(field.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(field.Arguments))
	}
	if field.Arguments[0].Name != "name" || field.Arguments[0].Value.Kind != "Variable" {
		t.Errorf("expected first argument 'name' bound to a variable, got %+v", field.Arguments[0])
	}
	if field.Arguments[1].Name != "age" || field.Arguments[1].Value.Literal != "30" {
		t.Errorf("expected second argument 'age' = 30, got %+v", field.Arguments[1])
	}
}

func TestParseListOfInputValues(t *testing.T) {
	doc := mustParse(t, `{ users(ids: ["1", "2"], filter: {active: true}) { id } }`)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	idsArg := field.Arguments[0]
	if idsArg.Value.Kind != "Array" || len(idsArg.Value.List) != 2 {
		t.Fatalf("expected a 2-element array, got %+v", idsArg.Value)
	}
	filterArg := field.Arguments[1]
	if filterArg.Value.Kind != "Object" {
		t.Fatalf("expected an object value, got %+v", filterArg.Value)
	}
	active, ok := filterArg.Value.ObjectFields["active"]
	if !ok || active.Kind != "Boolean" || active.Literal != "true" {
		t.Errorf("expected active=true in filter object, got %+v", filterArg.Value.ObjectFields)
	}
}

func TestParseDirectivesOnOperationAndField(t *testing.T) {
	doc := mustParse(t, `query @cached(ttl: 60) { hero @include(if: true) { name } }`)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	if len(op.Directives) != 1 || op.Directives[0].Name != "cached" {
		t.Fatalf("expected operation directive 'cached', got %+v", op.Directives)
	}
	field := op.SelectionSet.Selections[0].(*ast.Field)
	if len(field.Directives) != 1 || field.Directives[0].Name != "include" {
		t.Fatalf("expected field directive 'include', got %+v", field.Directives)
	}
}

func TestParseTypeDefinitionWithInterfaces(t *testing.T) {
	doc := mustParse(t, `type User implements Node & Timestamped { id: ID! name: String }`)
	typeDef, ok := doc.Definitions[0].(*ast.TypeDefinition)
	if !ok {
		t.Fatal("expected a type definition")
	}
	if typeDef.Name != "User" {
		t.Errorf("expected type name 'User', got %q", typeDef.Name)
	}
	if len(typeDef.Interfaces) != 2 || typeDef.Interfaces[0] != "Node" || typeDef.Interfaces[1] != "Timestamped" {
		t.Fatalf("expected interfaces [Node Timestamped], got %v", typeDef.Interfaces)
	}
	if len(typeDef.Fields) != 2 || typeDef.Fields[0].Name != "id" || typeDef.Fields[1].Name != "name" {
		t.Fatalf("expected fields [id name], got %+v", typeDef.Fields)
	}
}

func TestParseInterfaceDefinition(t *testing.T) {
	doc := mustParse(t, `interface Node { id: ID! }`)
	typeDef, ok := doc.Definitions[0].(*ast.TypeDefinition)
	if !ok {
		t.Fatal("expected a type definition for the interface")
	}
	if typeDef.Name != "Node" || len(typeDef.Fields) != 1 {
		t.Fatalf("expected interface Node with 1 field, got %+v", typeDef)
	}
}

func TestParseUnionTypeDefinition(t *testing.T) {
	doc := mustParse(t, `union SearchResult = Book | Movie | Author`)
	union, ok := doc.Definitions[0].(*ast.UnionTypeDefinition)
	if !ok {
		t.Fatal("expected a union type definition")
	}
	if union.Name != "SearchResult" {
		t.Errorf("expected name 'SearchResult', got %q", union.Name)
	}
	want := []string{"Book", "Movie", "Author"}
	if len(union.Members) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(union.Members))
	}
	for i, m := range want {
		if union.Members[i] != m {
			t.Errorf("member %d: expected %q, got %q", i, m, union.Members[i])
		}
	}
}

func TestParseFieldWithArgumentsSkipsTypeAnnotation(t *testing.T) {
	doc := mustParse(t, `type Query { user(id: ID!): User friends: [User!]! }`)
	typeDef := doc.Definitions[0].(*ast.TypeDefinition)
	if len(typeDef.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d: %+v", len(typeDef.Fields), typeDef.Fields)
	}
	if typeDef.Fields[0].Name != "user" || typeDef.Fields[1].Name != "friends" {
		t.Fatalf("expected fields [user friends], got %+v", typeDef.Fields)
	}
}

func TestParseSkipsComments(t *testing.T) {
	doc := mustParse(t, "# a comment\n{ hero { name } }")
	if len(doc.Definitions) != 1 {
		t.Fatalf("expected 1 definition despite leading comment, got %d", len(doc.Definitions))
	}
}

func TestParseDocumentPropagatesLexError(t *testing.T) {
	l, err := lexer.New([]byte(`{ hero(name: ^) }`))
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	p := New(l)
	_, err = p.ParseDocument()
	if err == nil {
		t.Fatal("expected a propagated lexical error")
	}
}
