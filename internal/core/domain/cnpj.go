package domain

// CompanyInfo is what the company registry returns for a CNPJ.
type CompanyInfo struct {
	CNPJ        string
	CompanyName string
	Email       string
}
