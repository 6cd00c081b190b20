package ipay

import (
	"context"
	"encoding/base64"
	"net/url"

	"ipay_billing/internal/domain/entities"
)

// RequestToken returns token unchanged when it is non-empty. Otherwise it asks
// iPay for a new one. When the token response has no access_token the
// original value is returned as is and the failure shows up later as an
// authentication error from iPay.
func (c *Client) RequestToken(ctx context.Context, token string) (string, error) {
	if token != "" {
		return token, nil
	}

	resp, err := c.FetchToken(ctx)
	if err != nil {
		return token, err
	}
	if accessToken := resp.AccessToken(); accessToken != "" {
		return accessToken, nil
	}

	c.logger.Printf("[ipay][token] no access_token in response status=%d kind=%s", resp.StatusCode, resp.Kind)
	return token, nil
}

// FetchToken performs the OAuth2 client-credentials exchange.
func (c *Client) FetchToken(ctx context.Context) (*entities.GatewayResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	return c.post(ctx, opToken, c.endpoint("/oauth2/token"), form, "", c.basicAuthorization(), EncodingForm)
}

func (c *Client) basicAuthorization() string {
	creds := c.cfg.ClientID + ":" + c.cfg.SecretKey
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
}
