// Package classifier assigns spending categories to free-text descriptions.
package classifier

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Rule maps a category to the keywords that select it.
type Rule struct {
	Category string
	Keywords []string
}

// DefaultRules is the built-in keyword table. Order is significant: the first
// category with a matching keyword wins.
var DefaultRules = []Rule{
	{Category: "Alimentação", Keywords: []string{"mercado", "supermercado", "padaria", "ifood"}},
	{Category: "Transporte", Keywords: []string{
		"uber", "99", "ônibus", "carro", "gasolina", "metrô", "trem", "passagem", "pedágio", "combustível",
	}},
	{Category: "Lazer", Keywords: []string{
		"cinema", "netflix", "spotify", "prime video", "show", "bar", "balada", "festa", "teatro", "parque",
	}},
	{Category: "Renda", Keywords: []string{
		"salário", "pix recebido", "depósito", "transferência recebida", "freela", "rendimento", "pagamento cliente",
	}},
	{Category: "Moradia", Keywords: []string{
		"aluguel", "condomínio", "luz", "água", "internet", "energia", "telefone", "manutenção", "iptu",
	}},
	{Category: "Saúde", Keywords: []string{
		"farmácia", "remédio", "consulta", "hospital", "exame", "laboratório", "clínica", "plano de saúde",
	}},
	{Category: "Educação", Keywords: []string{
		"escola", "faculdade", "curso", "livro", "plataforma online", "ead", "idiomas", "material escolar",
	}},
}

type compiledRule struct {
	category string
	keywords []string
}

// Classifier matches descriptions against a keyword table.
// It is safe for concurrent use.
type Classifier struct {
	rules []compiledRule
}

// New builds a Classifier from rules, normalizing every keyword once.
// Blank keywords are ignored.
func New(rules []Rule) *Classifier {
	c := &Classifier{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		cr := compiledRule{category: r.Category}
		for _, kw := range r.Keywords {
			if n := Normalize(kw); n != "" {
				cr.keywords = append(cr.keywords, n)
			}
		}
		c.rules = append(c.rules, cr)
	}
	return c
}

// NewDefault returns a Classifier over DefaultRules.
func NewDefault() *Classifier {
	return New(DefaultRules)
}

// Classify returns the first category, in table order, having a keyword that is a
// substring of description. ok is false for blank input or when nothing matches.
func (c *Classifier) Classify(description string) (category string, ok bool) {
	text := Normalize(description)
	if text == "" {
		return "", false
	}
	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.category, true
			}
		}
	}
	return "", false
}

// Normalize lower-cases s and strips diacritics, so "Ônibus" becomes "onibus".
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
