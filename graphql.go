// Package graphql provides a lightweight GraphQL implementation for Go.
// It includes lexing, parsing, execution, and HTTP handler support.
package graphql

import (
	"github.com/vertexql/graphql/ast"
	"github.com/vertexql/graphql/executor"
	"github.com/vertexql/graphql/handler"
	"github.com/vertexql/graphql/lexer"
	"github.com/vertexql/graphql/parser"
	"github.com/vertexql/graphql/registry"
	"github.com/vertexql/graphql/token"
)

// ===========================
// Re-exported Types
// ===========================

// Token types
type (
	Kind  = token.Kind
	Token = token.Token
)

// Token kind constants
const (
	StartOfFile = token.StartOfFile
	EndOfFile   = token.EndOfFile
	Name        = token.Name
	Integer     = token.Integer
	Float       = token.Float
	String      = token.String
	BlockString = token.BlockString
	Comment     = token.Comment
	Bang        = token.Bang
	Dollar      = token.Dollar
	Ampersand   = token.Ampersand
	LParen      = token.LParen
	RParen      = token.RParen
	Spread      = token.Spread
	Colon       = token.Colon
	Equal       = token.Equal
	At          = token.At
	LBracket    = token.LBracket
	RBracket    = token.RBracket
	LBrace      = token.LBrace
	Pipe        = token.Pipe
	RBrace      = token.RBrace
)

// AST types
type (
	Node                = ast.Node
	Document            = ast.Document
	Definition          = ast.Definition
	OperationDefinition = ast.OperationDefinition
	VariableDefinition  = ast.VariableDefinition
	Type                = ast.Type
	SelectionSet        = ast.SelectionSet
	Selection           = ast.Selection
	Field               = ast.Field
	Argument            = ast.Argument
	Directive           = ast.Directive
	Value               = ast.Value
	TypeDefinition      = ast.TypeDefinition
	UnionTypeDefinition = ast.UnionTypeDefinition
)

// Executor types
type (
	ResolverFunc = executor.ResolverFunc
	Executor     = executor.Executor
)

// Lexer and error types
type (
	Lexer       = lexer.Lexer
	SyntaxError = lexer.SyntaxError
)

// Parser type
type Parser = parser.Parser

// ===========================
// Convenience Functions
// ===========================

// NewLexer creates a new lexer for the given GraphQL source document.
func NewLexer(source []byte) (*Lexer, error) {
	return lexer.New(source)
}

// NewParser creates a new parser for the given lexer.
func NewParser(l *Lexer) *Parser {
	return parser.New(l)
}

// NewExecutor creates a new executor instance.
func NewExecutor() *Executor {
	return executor.New()
}

// Parse lexes and parses a GraphQL document in one step.
func Parse(source []byte) (*Document, error) {
	l, err := lexer.New(source)
	if err != nil {
		return nil, err
	}
	p := parser.New(l)
	return p.ParseDocument()
}

// ===========================
// Global Registry Functions
// ===========================

// RegisterQueryResolver registers a query resolver in the global registry.
func RegisterQueryResolver(field string, resolver ResolverFunc) {
	registry.RegisterQueryResolver(field, resolver)
}

// RegisterMutationResolver registers a mutation resolver in the global registry.
func RegisterMutationResolver(field string, resolver ResolverFunc) {
	registry.RegisterMutationResolver(field, resolver)
}

// RegisterSubscriptionResolver registers a subscription resolver in the global registry.
func RegisterSubscriptionResolver(field string, resolver ResolverFunc) {
	registry.RegisterSubscriptionResolver(field, resolver)
}

// ===========================
// HTTP Handlers
// ===========================

// GraphqlHandler handles standard GraphQL HTTP requests.
var GraphqlHandler = handler.GraphQL

// GraphqlUploadHandler handles GraphQL requests with file upload support.
var GraphqlUploadHandler = handler.Upload

// SubscriptionHandler handles GraphQL subscriptions over WebSocket.
var SubscriptionHandler = handler.Subscription
