package ai

import (
	"encoding/base64"
	"errors"

	"github.com/contentflowhq/contentflow-backend/internal/config"
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrNotConfigured is returned when neither a user key nor the shared
// operator key resolves. The message is shown to the user verbatim.
var ErrNotConfigured = errors.New("Anthropic API key not configured. Please add your API key in Settings.")

// KeyStore looks up stored provider keys for a caller
type KeyStore interface {
	GetActiveKey(userID, provider string) (*models.ProviderKey, error)
	TouchLastUsed(id string) error
}

// resolveCredential resolves the upstream API key for a request.
// Order: the caller's most recent active Anthropic key (base64-decoded),
// else the shared operator key from the environment. Lookup and decode
// failures fall through silently to the shared key.
func (s *Service) resolveCredential(userID string) (string, error) {
	if userID != "" && s.keys != nil {
		key, err := s.keys.GetActiveKey(userID, models.ProviderAnthropic)
		if err == nil && key != nil {
			decoded, decodeErr := base64.StdEncoding.DecodeString(key.EncodedKey)
			if decodeErr == nil && len(decoded) > 0 {
				if touchErr := s.keys.TouchLastUsed(key.ID); touchErr != nil {
					logrus.Warnf("Failed to update provider key last used timestamp: %v", touchErr)
				}
				return string(decoded), nil
			}
			logrus.Warnf("Failed to decode stored provider key for user %s: %v", userID, decodeErr)
		}
	}

	if shared := config.SharedAPIKey(); shared != "" {
		return shared, nil
	}

	return "", ErrNotConfigured
}
