package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
)

type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.CompanyProfile, error)
	GetProfile(ctx context.Context, name string) (*domain.CompanyProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry loads the company profiles from a .ledgercfg ini file. One
// section per company: realm_id, token, base_url.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.CompanyProfile, error) {
	var profiles []domain.CompanyProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, profileFromSection(section))
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*domain.CompanyProfile, error) {
	if !cr.cfg.HasSection(name) {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	profile := profileFromSection(cr.cfg.Section(name))
	if profile.RealmID == "" {
		return nil, fmt.Errorf("profile %s has no realm_id", name)
	}
	return &profile, nil
}

func profileFromSection(section *ini.Section) domain.CompanyProfile {
	return domain.CompanyProfile{
		Name:    section.Name(),
		RealmID: section.Key("realm_id").String(),
		Token:   section.Key("token").String(),
		BaseURL: section.Key("base_url").String(),
	}
}
