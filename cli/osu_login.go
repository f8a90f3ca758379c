package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/kionell/osu-api/base_service"
	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu/bancho"
	"github.com/kionell/osu-api/osu/factory"
)

// Login exchanges the configured Bancho credentials for a token.
func Login(ctx context.Context, f *factory.Factory) error {
	client, err := f.GetAPIClient(model.ServerBancho.String())
	if err != nil {
		return err
	}
	banchoClient, ok := client.(*bancho.Client)
	if !ok {
		return fmt.Errorf("[cli] unexpected %s client %T", model.ServerBancho, client)
	}
	if err := banchoClient.Authorize(ctx); err != nil {
		return err
	}
	tokens := banchoClient.Tokens()
	logger.Info().Msgf("Authorized as client, token expires at %s", tokens.ExpiresAt.Format(time.DateTime))
	fmt.Printf("Token type: %s\n", tokens.Type)
	fmt.Printf("Expires in: %ds\n", tokens.ExpiresIn())
	return nil
}

// LoginLink returns the authorization code link for the configured client.
func LoginLink(redirectURI, state string) (string, error) {
	config, err := base_service.LoadConfig()
	if err != nil {
		return "", err
	}
	if config.Bancho.ClientId == "" {
		return "", fmt.Errorf("[cli] bancho client_id is not configured")
	}
	if redirectURI == "" {
		redirectURI = config.Bancho.RedirectUri
	}
	return bancho.NewURLGenerator().AuthURL(config.Bancho.ClientId, redirectURI, state), nil
}
