// Package parser implements a small recursive-descent GraphQL parser
// consuming tokens from the lexer package. It interprets the
// byte-range tokens the lexer produces. String and block-string
// values are copied into ast.Value.Literal as the raw bytes between
// the quotes; escape sequences are not decoded.
package parser

import (
	"github.com/vertexql/graphql/ast"
	"github.com/vertexql/graphql/lexer"
	"github.com/vertexql/graphql/token"
)

// Parser parses GraphQL source code into an AST.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	err       error // first lexical error encountered, if any
}

// New creates a new Parser for the given lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Initialize two tokens.
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances the parser to the next token, transparently
// skipping comments (they are insignificant to the grammar, just as
// they are to GraphQL itself).
func (p *Parser) nextToken() {
	if p.err != nil {
		return
	}
	p.curToken = p.peekToken
	for {
		_, err := p.l.Advance()
		if err != nil {
			p.err = err
			p.curToken = token.Token{Kind: token.EndOfFile}
			p.peekToken = token.Token{Kind: token.EndOfFile}
			return
		}
		p.peekToken = p.l.Token()
		if p.peekToken.Kind != token.Comment {
			return
		}
	}
}

// ParseDocument parses a GraphQL document. It returns the first
// lexical error encountered, if any; a partially built document may
// still be returned alongside it.
func (p *Parser) ParseDocument() (*ast.Document, error) {
	doc := &ast.Document{}
	for p.curToken.Kind != token.EndOfFile {
		def := p.parseDefinition()
		if def != nil {
			doc.Definitions = append(doc.Definitions, def)
		}
	}
	return doc, p.err
}

// parseDefinition parses a single definition (operation, object/interface
// type, or union type).
func (p *Parser) parseDefinition() ast.Definition {
	if p.curToken.Kind == token.Name {
		switch string(p.curToken.Value) {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "type", "interface":
			return p.parseTypeDefinition()
		case "union":
			return p.parseUnionTypeDefinition()
		}
	}
	// Handle implicit queries (starting with '{').
	if p.curToken.Kind == token.LBrace {
		return p.parseOperationDefinition()
	}
	// Unknown definition, skip it.
	p.nextToken()
	return nil
}

// parseOperationDefinition parses a query, mutation, or subscription operation.
func (p *Parser) parseOperationDefinition() *ast.OperationDefinition {
	op := &ast.OperationDefinition{}
	if p.curToken.Kind == token.Name {
		switch string(p.curToken.Value) {
		case "query", "mutation", "subscription":
			op.Operation = string(p.curToken.Value)
			p.nextToken()
			if p.curToken.Kind == token.Name {
				op.Name = string(p.curToken.Value)
				p.nextToken()
			}
			if p.curToken.Kind == token.LParen {
				op.VariableDefinitions = p.parseVariableDefinitions()
			}
		}
	}
	if op.Operation == "" {
		op.Operation = "query"
	}
	op.Directives = p.parseDirectives()
	if p.curToken.Kind == token.LBrace {
		op.SelectionSet = p.parseSelectionSet()
	}
	return op
}

// parseVariableDefinitions parses variable definitions for an operation.
func (p *Parser) parseVariableDefinitions() []ast.VariableDefinition {
	var vars []ast.VariableDefinition
	p.nextToken() // skip '('
	for p.curToken.Kind != token.RParen && p.curToken.Kind != token.EndOfFile {
		if p.curToken.Kind != token.Dollar {
			p.nextToken()
			continue
		}
		p.nextToken() // skip '$'
		if p.curToken.Kind != token.Name {
			return vars
		}
		varDef := ast.VariableDefinition{Variable: string(p.curToken.Value)}
		p.nextToken()
		if p.curToken.Kind == token.Colon {
			p.nextToken()
			if t := p.parseType(); t != nil {
				varDef.Type = *t
			}
		}
		vars = append(vars, varDef)
	}
	p.nextToken() // skip ')'
	return vars
}

// parseDirectives parses zero or more "@name(args)" annotations.
func (p *Parser) parseDirectives() []ast.Directive {
	var directives []ast.Directive
	for p.curToken.Kind == token.At {
		p.nextToken() // skip '@'
		if p.curToken.Kind != token.Name {
			break
		}
		d := ast.Directive{Name: string(p.curToken.Value)}
		p.nextToken()
		if p.curToken.Kind == token.LParen {
			d.Arguments = p.parseArguments()
		}
		directives = append(directives, d)
	}
	return directives
}

// parseSelectionSet parses a selection set (fields within braces).
func (p *Parser) parseSelectionSet() *ast.SelectionSet {
	ss := &ast.SelectionSet{}
	p.nextToken() // skip '{'
	for p.curToken.Kind != token.RBrace && p.curToken.Kind != token.EndOfFile {
		sel := p.parseSelection()
		if sel != nil {
			ss.Selections = append(ss.Selections, sel)
		} else {
			p.nextToken()
		}
	}
	p.nextToken() // skip '}'
	return ss
}

// parseSelection parses a single selection. Only fields are modeled
// here; fragment spreads are recognized lexically by the lexer's
// Spread token but this AST has no node to hold one.
func (p *Parser) parseSelection() ast.Selection {
	if p.curToken.Kind != token.Name {
		return nil
	}
	return p.parseField()
}

// parseField parses a field selection.
func (p *Parser) parseField() *ast.Field {
	field := &ast.Field{}
	if p.curToken.Kind != token.Name {
		return nil
	}
	field.Name = string(p.curToken.Value)
	p.nextToken()
	if p.curToken.Kind == token.LParen {
		field.Arguments = p.parseArguments()
	}
	field.Directives = p.parseDirectives()
	if p.curToken.Kind == token.LBrace {
		field.SelectionSet = p.parseSelectionSet()
	}
	return field
}

// parseArguments parses field or directive arguments.
func (p *Parser) parseArguments() []ast.Argument {
	var args []ast.Argument
	p.nextToken() // skip '('
	for p.curToken.Kind != token.RParen && p.curToken.Kind != token.EndOfFile {
		if p.curToken.Kind != token.Name {
			p.nextToken()
			continue
		}
		arg := ast.Argument{Name: string(p.curToken.Value)}
		p.nextToken()
		if p.curToken.Kind == token.Colon {
			p.nextToken()
			arg.Value = p.parseValue()
		}
		args = append(args, arg)
	}
	p.nextToken() // skip ')'
	return args
}

// parseValue parses a value (int, float, string, boolean, null,
// enum, variable, object, or array).
func (p *Parser) parseValue() *ast.Value {
	// Handle object literals.
	if p.curToken.Kind == token.LBrace {
		return p.parseObject()
	}
	// Handle array literals.
	if p.curToken.Kind == token.LBracket {
		return p.parseArray()
	}

	val := &ast.Value{}
	switch p.curToken.Kind {
	case token.Integer:
		val.Kind = "Int"
		val.Literal = string(p.curToken.Value)
		p.nextToken()
	case token.Float:
		val.Kind = "Float"
		val.Literal = string(p.curToken.Value)
		p.nextToken()
	case token.String, token.BlockString:
		val.Kind = "String"
		val.Literal = string(p.curToken.Value)
		p.nextToken()
	case token.Name:
		lit := string(p.curToken.Value)
		switch lit {
		case "true", "false":
			val.Kind = "Boolean"
		case "null":
			val.Kind = "Null"
		default:
			val.Kind = "Enum"
		}
		val.Literal = lit
		p.nextToken()
	case token.Dollar:
		p.nextToken() // skip '$'
		if p.curToken.Kind == token.Name {
			val.Kind = "Variable"
			val.Literal = string(p.curToken.Value)
			p.nextToken()
		} else {
			val.Kind = "Variable"
			val.Literal = ""
		}
	default:
		val.Kind = "Illegal"
		val.Literal = string(p.curToken.Value)
		p.nextToken()
	}
	return val
}

// parseObject parses a GraphQL object literal.
func (p *Parser) parseObject() *ast.Value {
	objFields := make(map[string]*ast.Value)
	p.nextToken() // skip '{'
	for p.curToken.Kind != token.RBrace && p.curToken.Kind != token.EndOfFile {
		if p.curToken.Kind != token.Name {
			return &ast.Value{Kind: "Illegal", Literal: "expected object key"}
		}
		key := string(p.curToken.Value)
		p.nextToken()
		if p.curToken.Kind != token.Colon {
			return &ast.Value{Kind: "Illegal", Literal: "expected colon in object"}
		}
		p.nextToken() // skip colon
		objFields[key] = p.parseValue()
	}
	p.nextToken() // skip '}'
	return &ast.Value{Kind: "Object", ObjectFields: objFields}
}

// parseArray parses an array of values.
func (p *Parser) parseArray() *ast.Value {
	var arr []*ast.Value
	p.nextToken() // skip '['
	for p.curToken.Kind != token.RBracket && p.curToken.Kind != token.EndOfFile {
		arr = append(arr, p.parseValue())
	}
	p.nextToken() // skip ']'
	return &ast.Value{Kind: "Array", List: arr}
}

// parseType parses a GraphQL type (e.g., String, [Int!], User!).
func (p *Parser) parseType() *ast.Type {
	var t ast.Type
	switch p.curToken.Kind {
	case token.LBracket:
		p.nextToken()              // skip '['
		innerType := p.parseType() // Recursively parse the inner type
		t = ast.Type{IsList: true, Elem: innerType}
		if p.curToken.Kind == token.RBracket {
			p.nextToken() // skip ']'
		}
		if p.curToken.Kind == token.Bang {
			t.NonNull = true
			p.nextToken()
		}
		return &t
	case token.Name:
		t = ast.Type{Name: string(p.curToken.Value)}
		p.nextToken()
		if p.curToken.Kind == token.Bang {
			t.NonNull = true
			p.nextToken()
		}
		return &t
	}
	return nil
}

// parseTypeDefinition parses an object or interface type definition
// (e.g., "type Query implements Node { ... }").
func (p *Parser) parseTypeDefinition() ast.Definition {
	p.nextToken() // skip "type"/"interface"
	if p.curToken.Kind != token.Name {
		return nil
	}
	typeName := string(p.curToken.Value)
	p.nextToken() // move past type name

	var interfaces []string
	if p.curToken.Kind == token.Name && string(p.curToken.Value) == "implements" {
		p.nextToken()
		for p.curToken.Kind == token.Name {
			interfaces = append(interfaces, string(p.curToken.Value))
			p.nextToken()
			if p.curToken.Kind != token.Ampersand {
				break
			}
			p.nextToken()
		}
	}

	if p.curToken.Kind != token.LBrace {
		return &ast.TypeDefinition{Name: typeName, Interfaces: interfaces}
	}
	p.nextToken() // skip '{'

	var fields []*ast.Field
	iterations := 0
	const maxIterations = 10000 // safeguard
	for p.curToken.Kind != token.RBrace && p.curToken.Kind != token.EndOfFile {
		iterations++
		if iterations > maxIterations {
			break
		}
		field := p.parseTypeField()
		if field != nil {
			fields = append(fields, field)
		} else {
			p.nextToken()
		}
	}
	if p.curToken.Kind == token.RBrace {
		p.nextToken() // skip '}'
	}
	return &ast.TypeDefinition{Name: typeName, Interfaces: interfaces, Fields: fields}
}

// parseUnionTypeDefinition parses "union SearchResult = Book | Movie".
func (p *Parser) parseUnionTypeDefinition() ast.Definition {
	p.nextToken() // skip "union"
	if p.curToken.Kind != token.Name {
		return nil
	}
	name := string(p.curToken.Value)
	p.nextToken()

	if p.curToken.Kind != token.Equal {
		return &ast.UnionTypeDefinition{Name: name}
	}
	p.nextToken() // skip '='

	var members []string
	for p.curToken.Kind == token.Name {
		members = append(members, string(p.curToken.Value))
		p.nextToken()
		if p.curToken.Kind != token.Pipe {
			break
		}
		p.nextToken()
	}
	return &ast.UnionTypeDefinition{Name: name, Members: members}
}

// parseTypeField parses a field in a type definition.
func (p *Parser) parseTypeField() *ast.Field {
	if p.curToken.Kind != token.Name {
		return nil
	}
	field := &ast.Field{Name: string(p.curToken.Value)}
	p.nextToken() // consume the field name

	// If there's an argument list, skip it.
	if p.curToken.Kind == token.LParen {
		p.skipParenBlock()
	}

	// If a colon is present, skip the type annotation.
	if p.curToken.Kind == token.Colon {
		p.skipTypeAnnotation()
	}

	field.Directives = p.parseDirectives()
	return field
}

// skipParenBlock skips over a parenthesized block.
func (p *Parser) skipParenBlock() {
	if p.curToken.Kind != token.LParen {
		return
	}
	depth := 1
	p.nextToken() // skip the opening '('
	for depth > 0 && p.curToken.Kind != token.EndOfFile {
		if p.curToken.Kind == token.LParen {
			depth++
		} else if p.curToken.Kind == token.RParen {
			depth--
		}
		p.nextToken()
	}
}

// skipTypeAnnotation skips a type annotation (: Type).
func (p *Parser) skipTypeAnnotation() {
	if p.curToken.Kind != token.Colon {
		return
	}
	p.nextToken() // skip the colon

	// Check for list type.
	if p.curToken.Kind == token.LBracket {
		p.nextToken() // consume '['
		if p.curToken.Kind == token.Name {
			p.nextToken()
			if p.curToken.Kind == token.Bang {
				p.nextToken()
			}
		}
		if p.curToken.Kind == token.RBracket {
			p.nextToken()
		}
		if p.curToken.Kind == token.Bang {
			p.nextToken()
		}
		return
	}

	// Simple type.
	if p.curToken.Kind == token.Name {
		p.nextToken()
	}
	if p.curToken.Kind == token.Bang {
		p.nextToken()
	}
}
