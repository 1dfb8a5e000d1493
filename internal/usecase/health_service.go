package usecase

import (
	"context"
)

// SheetsCredentials reports which spreadsheet settings are present, never
// their values.
type SheetsCredentials struct {
	Backend        string
	HasSheetsID    bool
	HasClientEmail bool
	HasPrivateKey  bool
	UsingBase64    bool
}

type SheetsHealth struct {
	Credentials   SheetsCredentials
	SheetsAccess  bool
	SampleHeaders []string
	Error         string
}

// HeaderProbe reads the header row of a known tab.
type HeaderProbe func(ctx context.Context) ([]string, error)

type HealthService struct {
	credentials SheetsCredentials
	probe       HeaderProbe
}

func NewHealthService(credentials SheetsCredentials, probe HeaderProbe) *HealthService {
	return &HealthService{credentials: credentials, probe: probe}
}

// Sheets runs the header probe. A failed probe is reported in the result and
// ok is false.
func (s *HealthService) Sheets(ctx context.Context) (SheetsHealth, bool) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HealthService.Sheets")
	defer span.End()

	out := SheetsHealth{Credentials: s.credentials}
	if s.probe == nil {
		out.Error = "sheets probe is not configured"
		return out, false
	}

	headers, err := s.probe(ctx)
	if err != nil {
		out.Error = err.Error()
		return out, false
	}
	out.SheetsAccess = true
	out.SampleHeaders = headers
	return out, true
}
