// Package gen implements the blockgen code generator: it turns declarative
// block definitions (a block name plus an ordered identifier list) into the
// three coupled Go definitions each block needs, layered over the generic
// containers in pkg/race: the identifier type with its named constants, the
// linked block type, and the matching result variant. It also regenerates
// those generic containers themselves (see EmitArities).
package gen

import (
	"bytes"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// MaxArity is the largest member count a generated block may have. It
// matches the largest LinkN constructor shipped in pkg/race; regenerate the
// arity file first to raise it.
const MaxArity = 5

// File is the root of a block-definition document.
type File struct {
	// Package is the Go package name the generated file belongs to.
	Package string `yaml:"package"`

	// Blocks lists the block definitions to generate.
	Blocks []Block `yaml:"blocks"`
}

// Block defines one linked block: a name and its ordered identifier list.
// The identifier order is the block's insertion order and therefore its
// tie-break order.
type Block struct {
	Name        string   `yaml:"name"`
	Identifiers []string `yaml:"identifiers"`
}

// ConfigError represents a block-definition validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// Load reads and validates a block-definition file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read block definitions: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates block definitions from YAML. Unknown fields
// are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse block definitions: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the definition set as a whole: a usable package name, at
// least one block, unique exported block names, and per-block identifier
// lists that are nonempty, duplicate-free, exported and within MaxArity.
func (f *File) Validate() error {
	if !isIdent(f.Package) || isExported(f.Package) {
		return &ConfigError{Field: "package", Message: "must be a lower-case Go package name"}
	}
	if len(f.Blocks) == 0 {
		return &ConfigError{Field: "blocks", Message: "at least one block must be defined"}
	}

	seenBlocks := make(map[string]bool, len(f.Blocks))
	for i, b := range f.Blocks {
		field := fmt.Sprintf("blocks[%d]", i)

		if !isIdent(b.Name) || !isExported(b.Name) {
			return &ConfigError{Field: field + ".name", Message: "must be an exported Go identifier"}
		}
		if seenBlocks[b.Name] {
			return &ConfigError{Field: field + ".name", Message: fmt.Sprintf("duplicate block name %q", b.Name)}
		}
		seenBlocks[b.Name] = true

		if len(b.Identifiers) == 0 {
			return &ConfigError{Field: field + ".identifiers", Message: "at least one identifier must be supplied"}
		}
		if len(b.Identifiers) > MaxArity {
			return &ConfigError{
				Field:   field + ".identifiers",
				Message: fmt.Sprintf("%d identifiers exceeds the maximum arity %d", len(b.Identifiers), MaxArity),
			}
		}

		seenIDs := make(map[string]bool, len(b.Identifiers))
		for j, id := range b.Identifiers {
			idField := fmt.Sprintf("%s.identifiers[%d]", field, j)
			if !isIdent(id) || !isExported(id) {
				return &ConfigError{Field: idField, Message: "must be an exported Go identifier"}
			}
			if id == "Which" {
				return &ConfigError{Field: idField, Message: `"Which" is reserved for the result variant`}
			}
			if seenIDs[id] {
				return &ConfigError{Field: idField, Message: fmt.Sprintf("duplicate identifier %q", id)}
			}
			seenIDs[id] = true
		}
	}
	return nil
}

// isIdent reports whether s is a valid Go identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// isExported reports whether s starts with an upper-case letter.
func isExported(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
