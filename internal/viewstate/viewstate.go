// Package viewstate carries the page state between requests inside the page
// itself, as a signed and encrypted hidden form field. Nothing is stored on
// the server or in cookies, so a reload starts from a fresh page.
package viewstate

import (
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/securecookie"

	"FrontendMastery/internal/landing"
	"FrontendMastery/internal/notify"
)

// FieldName is the name of the hidden form field holding the token.
const FieldName = "state"

// View is what a token carries.
type View struct {
	State         landing.State  `json:"s"`
	Notifications []notify.Event `json:"n,omitempty"`
}

type Codec struct {
	sc *securecookie.SecureCookie
}

// New builds a codec. Nil keys are replaced with random ones.
func New(hashKey, blockKey []byte, maxAge time.Duration) (*Codec, error) {
	if hashKey == nil {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if blockKey == nil {
		blockKey = securecookie.GenerateRandomKey(32)
	}
	if hashKey == nil || blockKey == nil {
		return nil, errors.New("viewstate: could not generate keys")
	}
	// The token size is bounded by the email field limit and the
	// notification limit, not by securecookie's cookie-sized default.
	sc := securecookie.New(hashKey, blockKey).
		SetSerializer(securecookie.JSONEncoder{}).
		MaxAge(int(maxAge / time.Second)).
		MaxLength(0)
	return &Codec{sc: sc}, nil
}

func (c *Codec) Encode(v View) (string, error) {
	token, err := c.sc.Encode(FieldName, v)
	if err != nil {
		return "", fmt.Errorf("encode view state: %w", err)
	}
	return token, nil
}

// Decode parses a token. An empty token yields the zero View.
func (c *Codec) Decode(token string) (View, error) {
	var v View
	if token == "" {
		return v, nil
	}
	if err := c.sc.Decode(FieldName, token, &v); err != nil {
		return View{}, fmt.Errorf("decode view state: %w", err)
	}
	return v, nil
}
