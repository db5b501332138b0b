package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Parse extracts a Schema from a raw model response. The response format
// is not guaranteed, so parsing is best-effort: a JSON payload is tried
// first, then a line-oriented text scan. Parse never returns an error;
// unrecognized input yields an empty or partial schema with ParseNotes
// describing what was skipped.
func Parse(text string) *Schema {
	if payload := ExtractJSON(text); payload != "" {
		if s, ok := parseJSON(payload); ok {
			return s
		}
	}
	return parseText(text)
}

// ExtractJSON locates a JSON object in free-form model output. It tries a
// fenced ```json block first, then a brace-balanced scan from the first
// opening brace. Returns "" when no complete object is found.
func ExtractJSON(text string) string {
	if block, ok := fencedBlock(text, "json"); ok {
		return block
	}
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// fencedBlock returns the contents of the first ```lang fenced block.
func fencedBlock(text, lang string) (string, bool) {
	marker := "```" + lang
	start := strings.Index(text, marker)
	if start == -1 {
		return "", false
	}
	rest := text[start+len(marker):]
	end := strings.Index(rest, "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// Wire types matching the JSON contract requested in the schema prompt.
// References arrive as "table.column" strings and constraints as plain
// SQL keywords, so they are normalized after unmarshaling.
type wireSchema struct {
	Tables          []wireTable     `json:"tables"`
	Relationships   []*Relationship `json:"relationships"`
	DesignDecisions []string        `json:"design_decisions"`
}

type wireTable struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PrimaryKey  string      `json:"primary_key"`
	Fields      []wireField `json:"fields"`
}

type wireField struct {
	Name         string   `json:"name"`
	DataType     string   `json:"data_type"`
	IsPrimaryKey bool     `json:"is_primary_key"`
	IsForeignKey bool     `json:"is_foreign_key"`
	References   string   `json:"references"`
	Constraints  []string `json:"constraints"`
}

func parseJSON(payload string) (*Schema, bool) {
	var wire wireSchema
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, false
	}
	if len(wire.Tables) == 0 {
		return nil, false
	}

	s := &Schema{
		Relationships:   wire.Relationships,
		DesignDecisions: wire.DesignDecisions,
	}
	seen := map[string]bool{}
	for _, wt := range wire.Tables {
		if wt.Name == "" {
			s.ParseNotes = append(s.ParseNotes, "skipped a table with no name")
			continue
		}
		if seen[wt.Name] {
			s.ParseNotes = append(s.ParseNotes, fmt.Sprintf("skipped duplicate table %q", wt.Name))
			continue
		}
		seen[wt.Name] = true

		table := &Table{Name: wt.Name, Description: wt.Description}
		fieldSeen := map[string]bool{}
		for _, wf := range wt.Fields {
			if wf.Name == "" {
				s.ParseNotes = append(s.ParseNotes, fmt.Sprintf("skipped an unnamed field in table %q", wt.Name))
				continue
			}
			if fieldSeen[wf.Name] {
				s.ParseNotes = append(s.ParseNotes, fmt.Sprintf("skipped duplicate field %q in table %q", wf.Name, wt.Name))
				continue
			}
			fieldSeen[wf.Name] = true
			table.Fields = append(table.Fields, normalizeField(wf, wt.PrimaryKey))
		}
		s.Tables = append(s.Tables, table)
	}
	return s, true
}

func normalizeField(wf wireField, tablePrimaryKey string) *Field {
	f := &Field{
		Name:        wf.Name,
		DataType:    wf.DataType,
		PrimaryKey:  wf.IsPrimaryKey,
		ForeignKey:  wf.IsForeignKey,
		Constraints: wf.Constraints,
	}
	// Some responses only declare the primary key at the table level.
	if tablePrimaryKey != "" && wf.Name == tablePrimaryKey {
		f.PrimaryKey = true
	}
	if ref, ok := ParseReference(wf.References); ok {
		f.Reference = ref
		f.ForeignKey = true
	}
	f.Nullable = !f.PrimaryKey && !hasConstraint(wf.Constraints, "NOT NULL")
	return f
}

func hasConstraint(constraints []string, name string) bool {
	for _, c := range constraints {
		if strings.EqualFold(strings.TrimSpace(c), name) {
			return true
		}
	}
	return false
}

// ParseReference interprets a foreign-key target written as
// "table.column" or "table(column)". A bare table name is accepted and
// yields an empty Column.
func ParseReference(s string) (*Reference, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if i := strings.IndexByte(s, '.'); i > 0 {
		return &Reference{Table: s[:i], Column: strings.TrimSuffix(s[i+1:], ")")}, true
	}
	if i := strings.IndexByte(s, '('); i > 0 && strings.HasSuffix(s, ")") {
		return &Reference{Table: s[:i], Column: s[i+1 : len(s)-1]}, true
	}
	if identRe.MatchString(s) {
		return &Reference{Table: s}, true
	}
	return nil, false
}

var (
	identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	// Table: Customer / ## Table: Customer / **Table: Customer**
	tableHeaderRe = regexp.MustCompile(`(?i)^[#*\s]*table\s*[:\-]\s*([A-Za-z_][A-Za-z0-9_]*)`)

	// CREATE TABLE customer (
	createTableRe = regexp.MustCompile("(?i)create\\s+table\\s+(?:if\\s+not\\s+exists\\s+)?[\"'`]?([A-Za-z_][A-Za-z0-9_]*)")

	// - customer_id (INT) [PRIMARY KEY]  /  * name: VARCHAR(100)
	// The paren form allows one nested level for types like DECIMAL(10,2).
	fieldBulletRe = regexp.MustCompile(`^\s*[-*•]\s*([A-Za-z_][A-Za-z0-9_]*)\s*(?:\(((?:[^()]|\([^()]*\))*)\)|:\s*([^\[\n]+))?`)

	referencesRe = regexp.MustCompile(`(?i)(?:references|fk\s*(?:->|→)?)\s*:?\s*([A-Za-z_][A-Za-z0-9_]*(?:[.(][A-Za-z_][A-Za-z0-9_]*\)?)?)`)
)

// matchTableHeader recognizes a line that introduces a table and returns
// its name. Accepts "Table: Name" headings and CREATE TABLE statements.
func matchTableHeader(line string) (string, bool) {
	if m := tableHeaderRe.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	if m := createTableRe.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	return "", false
}

// matchFieldLine recognizes a bulleted field declaration under a table
// heading and returns the populated field. The line must start with a
// bullet and a valid identifier; type, key markers and references are
// optional.
func matchFieldLine(line string) (*Field, bool) {
	m := fieldBulletRe.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	dataType := m[2]
	if dataType == "" {
		dataType = strings.TrimSpace(m[3])
	}
	f := &Field{Name: m[1], DataType: dataType}

	lower := strings.ToLower(line)
	if strings.Contains(lower, "primary key") {
		f.PrimaryKey = true
	}
	if strings.Contains(lower, "foreign key") || strings.Contains(lower, "fk") {
		f.ForeignKey = true
	}
	if m := referencesRe.FindStringSubmatch(line); m != nil {
		if ref, ok := ParseReference(m[1]); ok {
			f.Reference = ref
			f.ForeignKey = true
		}
	}
	f.Nullable = !f.PrimaryKey && !strings.Contains(lower, "not null")
	return f, true
}

// parseText scans the response line by line, collecting fields under the
// most recent table heading. Lines that match nothing are ignored.
func parseText(text string) *Schema {
	s := &Schema{}
	var current *Table
	seen := map[string]bool{}

	for _, line := range strings.Split(text, "\n") {
		if name, ok := matchTableHeader(line); ok {
			if seen[name] {
				s.ParseNotes = append(s.ParseNotes, fmt.Sprintf("skipped duplicate table %q", name))
				current = nil
				continue
			}
			seen[name] = true
			current = &Table{Name: name}
			s.Tables = append(s.Tables, current)
			continue
		}
		if current == nil {
			continue
		}
		if f, ok := matchFieldLine(line); ok {
			if current.Field(f.Name) != nil {
				s.ParseNotes = append(s.ParseNotes, fmt.Sprintf("skipped duplicate field %q in table %q", f.Name, current.Name))
				continue
			}
			current.Fields = append(current.Fields, f)
		}
	}
	if s.Empty() {
		s.ParseNotes = append(s.ParseNotes, "no recognizable schema structure in response")
	}
	return s
}

// ParseQueries extracts SQL statements from a query-generation response.
// Statements end at ";" and keep their immediately preceding "--" comment
// lines. Fenced ```sql blocks are preferred when present.
func ParseQueries(text string) []string {
	if block, ok := fencedBlock(text, "sql"); ok {
		text = block
	}
	var queries []string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(current) > 0 && !endsStatement(current) {
				continue
			}
			current = nil
			continue
		}
		if strings.HasPrefix(trimmed, "--") && len(current) > 0 && endsStatement(current) {
			queries = append(queries, strings.Join(current, "\n"))
			current = nil
		}
		if strings.HasPrefix(trimmed, "--") || looksLikeSQL(trimmed) || len(current) > 0 {
			current = append(current, trimmed)
		}
		if len(current) > 0 && endsStatement(current) && !strings.HasPrefix(trimmed, "--") {
			queries = append(queries, strings.Join(current, "\n"))
			current = nil
		}
	}
	if len(current) > 0 && endsStatement(current) {
		queries = append(queries, strings.Join(current, "\n"))
	}
	return queries
}

func endsStatement(lines []string) bool {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], "--") {
			continue
		}
		return strings.HasSuffix(lines[i], ";")
	}
	return false
}

var sqlKeywords = []string{"select ", "insert ", "update ", "delete ", "create ", "alter ", "with "}

func looksLikeSQL(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range sqlKeywords {
		if strings.HasPrefix(lower, kw) {
			return true
		}
	}
	return false
}

// ParseSuggestions extracts bulleted or numbered recommendation lines
// from an optimization response.
func ParseSuggestions(text string) []string {
	var suggestions []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if s, ok := matchSuggestionLine(trimmed); ok {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}

var numberedRe = regexp.MustCompile(`^\d+[.)]\s+(.+)$`)

// matchSuggestionLine recognizes "- item", "* item", "• item" and
// "1. item" forms, returning the item text.
func matchSuggestionLine(line string) (string, bool) {
	for _, prefix := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, prefix) {
			item := strings.TrimSpace(strings.TrimPrefix(line, prefix))
			return item, item != ""
		}
	}
	if m := numberedRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
