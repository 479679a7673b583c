package keep

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	oauth2google "golang.org/x/oauth2/google"
	keepapi "google.golang.org/api/keep/v1"

	"github.com/custodia-labs/notefetch/internal/core/domain"
)

// ServiceAccountFile is the fixed credential path, relative to the
// process working directory.
const ServiceAccountFile = "service_account.json"

// Scopes grants read-only access to Keep data. Never mutated.
var Scopes = []string{keepapi.KeepReadonlyScope}

// Credentials loads the service-account credential from ServiceAccountFile.
//
// The Keep API only grants access to service accounts with domain-wide
// delegation, so there is no interactive fallback: a missing file surfaces
// domain.ErrAuthRequired.
func Credentials(ctx context.Context) (*oauth2google.Credentials, error) {
	data, err := os.ReadFile(ServiceAccountFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(
			"%w: %s not found (the Keep API only supports service accounts with domain-wide delegation)",
			domain.ErrAuthRequired, ServiceAccountFile)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ServiceAccountFile, err)
	}

	creds, err := oauth2google.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrAuthInvalid, ServiceAccountFile, err)
	}
	return creds, nil
}
