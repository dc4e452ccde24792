package cnpj

// Company is the registered company record returned by the lookup service.
type Company struct {
	Cnpj        string  `json:"cnpj"`
	LegalName   string  `json:"razao_social"`
	TradeName   *string `json:"nome_fantasia,omitempty"`
	City        *string `json:"municipio,omitempty"`
	State       *string `json:"uf,omitempty"`
	PostalCode  *string `json:"cep,omitempty"`
	PhoneNumber *string `json:"telefone,omitempty"`
}

// DisplayName returns the trade name when present, else the legal name.
func (c *Company) DisplayName() string {
	if c.TradeName != nil && *c.TradeName != "" {
		return *c.TradeName
	}
	return c.LegalName
}
