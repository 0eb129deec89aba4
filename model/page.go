package model

// Page contains the fields shared by every page rendered by this service
type Page struct {
	Metadata              Metadata       `json:"metadata"`
	Breadcrumb            []TaxonomyNode `json:"breadcrumb,omitempty"`
	BetaBannerEnabled     bool           `json:"beta_banner_enabled"`
	TaxonomyDomain        string         `json:"taxonomy_domain"`
	CookiesPreferencesSet bool           `json:"cookies_preferences_set"`
	CookiesPolicy         CookiesPolicy  `json:"cookies_policy"`
}

// Metadata contains the title and description for a page
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// TaxonomyNode is a single breadcrumb entry
type TaxonomyNode struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// CookiesPolicy contains the user's consent choices for each cookie category
type CookiesPolicy struct {
	Essential bool `json:"essential"`
	Usage     bool `json:"usage"`
}
