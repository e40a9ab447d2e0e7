package selection

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTicket is returned for tokens that fail signature or claim checks
var ErrInvalidTicket = errors.New("invalid selection ticket")

const ticketIssuer = "futbol-backend"

// ticketClaims carries a ticket inside a JWT
type ticketClaims struct {
	Generation uint64    `json:"gen"`
	Selection  Selection `json:"sel"`
	jwt.RegisteredClaims
}

// TicketSigner signs tickets as HS256 JWTs so stateless HTTP clients can
// present them back with later requests
type TicketSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTicketSigner creates a signer; a non-positive ttl defaults to one hour
func NewTicketSigner(secret string, ttl time.Duration) *TicketSigner {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TicketSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Sign encodes a ticket
func (s *TicketSigner) Sign(t Ticket) (string, error) {
	now := s.now()
	claims := ticketClaims{
		Generation: t.Generation,
		Selection:  t.Selection,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ticketIssuer,
			Subject:   t.SessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign ticket: %w", err)
	}
	return token, nil
}

// Parse verifies a token and returns the ticket it carries
func (s *TicketSigner) Parse(token string) (Ticket, error) {
	claims := &ticketClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ticketIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Ticket{}, fmt.Errorf("%w: %v", ErrInvalidTicket, err)
	}
	if claims.Subject == "" || claims.Generation == 0 {
		return Ticket{}, fmt.Errorf("%w: missing session or generation", ErrInvalidTicket)
	}

	return Ticket{
		SessionID:  claims.Subject,
		Generation: claims.Generation,
		Selection:  claims.Selection,
	}, nil
}
