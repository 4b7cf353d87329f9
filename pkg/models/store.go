package models

import "strings"

// StoreRecord identifies the storefront a product was scraped from.
type StoreRecord struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
	URL    string `json:"url,omitempty"`
}

// DisplayName returns the store name or the placeholder.
func (s *StoreRecord) DisplayName() string {
	if strings.TrimSpace(s.Name) == "" {
		return NotSpecified
	}
	return s.Name
}

// DisplayDomain returns the store domain or the placeholder.
func (s *StoreRecord) DisplayDomain() string {
	if strings.TrimSpace(s.Domain) == "" {
		return NotSpecified
	}
	return s.Domain
}
