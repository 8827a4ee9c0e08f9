package spendreport

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the externally-configurable part of the pipeline: the ordered
// category rule table and the excluded payee list. Everything else is
// behavior.
type Config struct {
	Categories      []CategorySpec `json:"categories"`
	ExcludedVendors []string       `json:"excludedVendors"`
}

// Rules compiles the category table. Pattern errors surface here, at
// startup, never per transaction.
func (c Config) Rules() (*RuleSet, error) { return NewRuleSet(c.Categories) }

// LoadConfig reads a config file, or returns the built-in defaults when
// path is empty.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns the built-in rule table and exclusion list.
// Category order matters: the first matching category wins, so broad
// catch-all patterns belong near the end.
func DefaultConfig() Config {
	return Config{
		// Owner transactions, kept out of every report.
		ExcludedVendors: []string{
			"Stockton Walbeck",
			"Dakota Walbeck",
			"Parker Walbeck",
			"Canyon Smith",
		},
		Categories: []CategorySpec{
			{
				Name:        "Software & SaaS",
				Description: "Software subscriptions, SaaS tools and digital services",
				Keywords: []string{
					"HIGHLEVEL", "EXTENDLY", "GOOGLE", "USERPILOT", "CHARGEFLOW",
					"ONLINEJOBSPH", "PADDLE", "BB9 LLC", "OPENAI", "ADOBE",
					"RAPIDAPI", "X CORP", "ZOOM", "SLACK", "CANVA", "DROPBOX",
					"MICROSOFT", "SUBSCRIPTION", "SAAS", "HOSTING",
				},
				Patterns: []string{`GSUITE`, `CHATGPT`, `PREMIERE`, `SOFTWARE`},
			},
			{
				Name:        "VA & Contractors",
				Description: "Virtual assistants and contractor payments",
				Keywords:    []string{"WISE INC", "PAYONEER", "COURSE CREATOR PRO INC"},
				Patterns:    []string{`FIRST HALF PAYM`, `PAY TO:`, `WISE.*240517`},
			},
			{
				Name:        "Affiliate Commissions",
				Description: "Affiliate and commission payments",
				Keywords:    []string{"PAYPAL"},
				Patterns: []string{
					`PAYPAL \*[A-Z]+`, `ORTHOPATIE`, `ACADEMYVIS`, `PROFAMILY`,
					`TRAVELMONE`, `RENTALPROP`, `PAYNEPOINT`, `INEEDSCIEN`,
				},
			},
			{
				Name:        "Marketing & Ads",
				Description: "Advertising and marketing expenses",
				Keywords:    []string{"DADGUMMARKETING", "FACEBOOK", "FACEBK", "META ADS"},
				Patterns:    []string{`FACEBOOK\.COM`, `MARKETING`},
			},
			{
				Name:        "Contract Labor",
				Description: "Contract labor and commission payments",
				Keywords:    []string{"JACKSON CRANDALL", "MAY COMMISSIONS"},
				Patterns:    []string{`COMMISSIONS?`, `CONTRACT.*LABOR`},
			},
			{
				Name:        "Tax Payments",
				Description: "Tax payments and government fees",
				Keywords:    []string{"IRS", "TAX PAYMNT", "USATAXPYMT"},
				Patterns:    []string{`TAX`, `IRS.*USATAXPYMT`},
			},
			{
				Name:        "Bank & Financial",
				Description: "Bank transfers and financial services",
				Keywords:    []string{"INST XFER", "CURRENTDIGI", "STRIPE", "INTUIT", "SERVICE FEE", "BANK FEE", "WIRE"},
				Patterns:    []string{`INST XFER`, `TRANSFER`},
			},
			{
				Name:        "Business Services",
				Description: "General business services and supplies",
				Keywords:    []string{"AMAZON", "AMZN", "STAPLES", "OFFICE DEPOT", "SUPPLIES"},
				Patterns:    []string{`BUSINESS.*SERVICES`},
			},
		},
	}
}
