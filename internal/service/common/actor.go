//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"errors"
	"fmt"
	"os"
	"os/user"

	api "github.com/oshokin/inheritance-vault/internal/api/grpc/inheritance"
	"github.com/oshokin/inheritance-vault/internal/version"
)

// usernameVariables are consulted in order when the OS user database has no entry,
// as happens in minimal containers running under an arbitrary UID.
var usernameVariables = []string{"USER", "USERNAME", "LOGNAME"}

// errUnknownUser is returned when the current user cannot be named.
var errUnknownUser = errors.New("current user is unknown")

// DetectActor describes who sends vault requests from this machine.
// The server writes it next to the caller address in its audit log.
func DetectActor() (*api.SystemActor, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	username, err := currentUsername(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	return &api.SystemActor{
		Hostname: hostname,
		Username: username,
		Client:   version.Name + "/" + version.Short(),
	}, nil
}

// currentUsername asks the user database first and falls back to the environment.
func currentUsername(lookupEnv func(string) (string, bool)) (string, error) {
	currentUser, err := user.Current()
	if err == nil && currentUser.Username != "" {
		return currentUser.Username, nil
	}

	for _, name := range usernameVariables {
		if value, ok := lookupEnv(name); ok && value != "" {
			return value, nil
		}
	}

	if err != nil {
		return "", fmt.Errorf("%w: %w", errUnknownUser, err)
	}

	return "", errUnknownUser
}
