package accounting

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Fixed accounts from the Plan Comptable Général used by every purchase
// journal, regardless of line-item categories.
const (
	SupplierAccount     = 401   // Fournisseurs (accounts payable)
	SupplierAccountName = "Fournisseurs"

	DeductibleVATAccount     = 44566 // TVA sur autres biens et services déductible
	DeductibleVATAccountName = "TVA Déductible"
)

// DefaultCategory is assigned to line items no keyword matches.
const DefaultCategory = "Autres"

const defaultAccount = 658 // Autres charges de gestion courante

// KeywordMapping is one keyword→category pair of the configuration file.
type KeywordMapping struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

// AccountMapping ties a category label to its PCG account number.
type AccountMapping struct {
	Category string `yaml:"category"`
	Number   int    `yaml:"number"`
}

// TablesConfig is the YAML layout of a tables override file.
type TablesConfig struct {
	DefaultCategory string           `yaml:"default_category"`
	Keywords        []KeywordMapping `yaml:"keywords"`
	Accounts        []AccountMapping `yaml:"accounts"`
}

// Tables holds the keyword→category and category→account mappings. They are
// built once, at load time, and never mutated afterwards, so a single Tables
// value is safe for unrestricted concurrent reads.
type Tables struct {
	keywords        []KeywordMapping // normalized, sorted longest keyword first
	accounts        map[string]int
	defaultCategory string
	defaultAccount  int
}

// DefaultTables returns the built-in tables: the simplified PCG expense and
// revenue vocabulary with its keyword list.
func DefaultTables() *Tables {
	return newTables(builtinConfig())
}

// LoadTables reads a tables override file in YAML format. Missing sections
// fall back to the built-in tables.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}

	var config TablesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	builtin := builtinConfig()
	if config.DefaultCategory == "" {
		config.DefaultCategory = builtin.DefaultCategory
	}
	if len(config.Keywords) == 0 {
		config.Keywords = builtin.Keywords
	}
	if len(config.Accounts) == 0 {
		config.Accounts = builtin.Accounts
	}

	return newTables(config), nil
}

func newTables(config TablesConfig) *Tables {
	t := &Tables{
		accounts:        make(map[string]int, len(config.Accounts)),
		defaultCategory: config.DefaultCategory,
		defaultAccount:  defaultAccount,
	}

	t.keywords = make([]KeywordMapping, len(config.Keywords))
	for i, kw := range config.Keywords {
		t.keywords[i] = KeywordMapping{
			Keyword:  normalize(kw.Keyword),
			Category: kw.Category,
		}
	}
	// Longer, more specific multi-word keywords are tested before shorter
	// generic ones.
	sort.SliceStable(t.keywords, func(i, j int) bool {
		return len(t.keywords[i].Keyword) > len(t.keywords[j].Keyword)
	})

	for _, acc := range config.Accounts {
		t.accounts[acc.Category] = acc.Number
	}
	if n, ok := t.accounts[t.defaultCategory]; ok {
		t.defaultAccount = n
	} else {
		t.accounts[t.defaultCategory] = t.defaultAccount
	}

	return t
}

// Account returns the PCG account number for a category. Unknown categories
// resolve to the default account.
func (t *Tables) Account(category string) int {
	if n, ok := t.accounts[category]; ok {
		return n
	}
	return t.defaultAccount
}

// DefaultCategoryName returns the category assigned when no keyword matches.
func (t *Tables) DefaultCategoryName() string {
	return t.defaultCategory
}

// HasCategory checks whether a category has an explicit account mapping.
func (t *Tables) HasCategory(category string) bool {
	_, ok := t.accounts[category]
	return ok
}

// builtinConfig is the static vocabulary: simplified PCG categories, their
// account numbers (expenses class 6, revenues class 7) and the keyword list
// used for classification. Keywords are stored pre-normalized (lowercase,
// no diacritics).
func builtinConfig() TablesConfig {
	return TablesConfig{
		DefaultCategory: DefaultCategory,
		Keywords: []KeywordMapping{
			{Keyword: "achats de marchandises", Category: "Achats de marchandises"},
			{Keyword: "matieres premieres", Category: "Achats de matières premières et fournitures"},
			{Keyword: "fourniture", Category: "Achats de matières premières et fournitures"},
			{Keyword: "sous-traitance", Category: "Sous-traitance"},
			{Keyword: "location", Category: "Locations"},
			{Keyword: "loyer", Category: "Locations"},
			{Keyword: "entretien", Category: "Entretien et réparations"},
			{Keyword: "reparation", Category: "Entretien et réparations"},
			{Keyword: "assurance", Category: "Primes d'assurance"},
			{Keyword: "documentation", Category: "Documentation et honoraires"},
			{Keyword: "honoraires", Category: "Documentation et honoraires"},
			{Keyword: "conseil", Category: "Documentation et honoraires"},
			{Keyword: "transport", Category: "Transports et déplacements"},
			{Keyword: "deplacement", Category: "Transports et déplacements"},
			{Keyword: "frais postaux", Category: "Frais postaux et télécommunications"},
			{Keyword: "telephone", Category: "Frais postaux et télécommunications"},
			{Keyword: "bancaire", Category: "Services bancaires"},
			{Keyword: "publicite", Category: "Publicité et relations publiques"},
			{Keyword: "marketing", Category: "Publicité et relations publiques"},
			{Keyword: "impot", Category: "Impôts et taxes"},
			{Keyword: "taxe", Category: "Impôts et taxes"},
			{Keyword: "salaire", Category: "Salaires et appointements"},
			{Keyword: "remuneration", Category: "Salaires et appointements"},
			{Keyword: "charges sociales", Category: "Charges sociales"},
			{Keyword: "charges financieres", Category: "Charges financières"},
			{Keyword: "interet", Category: "Charges financières"},
			{Keyword: "ventes de marchandises", Category: "Ventes de marchandises"},
			{Keyword: "prestations de services", Category: "Prestations de services"},
			{Keyword: "service", Category: "Prestations de services"},
		},
		Accounts: []AccountMapping{
			// Expense accounts (class 6)
			{Category: "Achats de marchandises", Number: 607},
			{Category: "Achats de matières premières et fournitures", Number: 606},
			{Category: "Sous-traitance", Number: 611},
			{Category: "Locations", Number: 613},
			{Category: "Entretien et réparations", Number: 615},
			{Category: "Primes d'assurance", Number: 616},
			{Category: "Documentation et honoraires", Number: 622},
			{Category: "Transports et déplacements", Number: 625},
			{Category: "Frais postaux et télécommunications", Number: 626},
			{Category: "Services bancaires", Number: 627},
			{Category: "Publicité et relations publiques", Number: 623},
			{Category: "Impôts et taxes", Number: 635},
			{Category: "Salaires et appointements", Number: 641},
			{Category: "Charges sociales", Number: 645},
			{Category: "Charges financières", Number: 661},
			{Category: "Autres charges", Number: 658},
			// Revenue accounts (class 7). The journal generator only posts
			// expense entries, but the chart of accounts ships both sides.
			{Category: "Ventes de produits finis", Number: 701},
			{Category: "Prestations de services", Number: 706},
			{Category: "Ventes de marchandises", Number: 707},
			{Category: "Produits financiers", Number: 768},
			{Category: "Subventions d'exploitation", Number: 740},
			{Category: "Autres produits", Number: 758},
			{Category: DefaultCategory, Number: defaultAccount},
		},
	}
}
