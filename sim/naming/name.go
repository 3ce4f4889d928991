package naming

import (
	"strconv"
	"strings"
)

// A Name is a hierarchical name made of dot-separated tokens. Each token
// names one element, optionally followed by square-bracket indices when the
// element is part of a series (e.g., "Top.Fifo[2]").
type Name struct {
	Tokens []Token
}

// Token is one element of a hierarchical name.
type Token struct {
	ElemName string
	Index    []int
}

// Parse splits a name string into its tokens.
func Parse(sname string) Name {
	parts := strings.Split(sname, ".")
	name := Name{Tokens: make([]Token, len(parts))}

	for i, part := range parts {
		name.Tokens[i] = parseToken(part)
	}

	return name
}

func parseToken(s string) Token {
	bracketsMustMatch(s)

	fields := strings.Split(s, "[")
	token := Token{
		ElemName: fields[0],
		Index:    make([]int, len(fields)-1),
	}

	for i := 1; i < len(fields); i++ {
		index, err := strconv.Atoi(strings.TrimSuffix(fields[i], "]"))
		if err != nil {
			panic("name index must be an integer")
		}

		token.Index[i-1] = index
	}

	return token
}

func bracketsMustMatch(s string) {
	open := 0
	for _, c := range s {
		switch c {
		case '[':
			open++
		case ']':
			open--
			if open < 0 {
				panic("name brackets must match")
			}
		}
	}

	if open != 0 {
		panic("name brackets must match")
	}
}

// MustBeValid panics if the name does not follow the naming convention.
// Names are hierarchical ("A.B.C"), each element is non-empty, starts with a
// capital letter, and uses square-bracket notation for series elements.
func MustBeValid(name string) {
	defer func() {
		if r := recover(); r != nil {
			panic("name " + name + " is not valid: " + r.(string))
		}
	}()

	n := Parse(name)
	for _, token := range n.Tokens {
		tokenMustBeValid(token)
	}
}

func tokenMustBeValid(token Token) {
	if token.ElemName == "" {
		panic("name element must not be empty")
	}

	for _, c := range []string{"_", "\"", "'", "-"} {
		if strings.Contains(token.ElemName, c) {
			panic("name element must not contain " + c)
		}
	}

	if token.ElemName[0] < 'A' || token.ElemName[0] > 'Z' {
		panic("name element must start with a capital letter")
	}
}
