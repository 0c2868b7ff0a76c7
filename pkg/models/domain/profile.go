package domain

import "fmt"

// CompanyProfile is one entry of the local credentials file: everything
// needed to address a company's books on the accounting API. Token
// acquisition and refresh happen outside this system; the file only carries
// the current value.
type CompanyProfile struct {
	Name    string
	RealmID string
	Token   string
	BaseURL string
}

func (p CompanyProfile) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.RealmID)
}
