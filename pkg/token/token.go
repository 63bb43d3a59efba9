package token

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/hkdf"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

const (
	signingKeyInfo = "portfolio session signing"
	sealingKeyInfo = "portfolio session sealing"
)

type TokenInfo struct {
	UserName   string
	Subject    string
	Expiration time.Duration
	// Extra claims, merged after the registered ones.
	Extra map[string]any
}

// Service issues HS512 JWTs sealed inside a compact JWE (dir + A256GCM).
// Both keys are derived from one process secret, so a token can be neither
// read nor forged without it.
type Service struct {
	signingKey []byte
	sealingKey []byte
	encrypter  jose.Encrypter
}

func NewService(secret []byte) (*Service, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret must not be empty")
	}

	signingKey, err := deriveKey(secret, signingKeyInfo, 64)
	if err != nil {
		return nil, fmt.Errorf("derive signing key: %w", err)
	}

	sealingKey, err := deriveKey(secret, sealingKeyInfo, 32)
	if err != nil {
		return nil, fmt.Errorf("derive sealing key: %w", err)
	}

	encrypter, err := jose.NewEncrypter(
		jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: sealingKey},
		(&jose.EncrypterOptions{}).WithContentType("JWT"),
	)
	if err != nil {
		return nil, fmt.Errorf("create encrypter: %w", err)
	}

	return &Service{
		signingKey: signingKey,
		sealingKey: sealingKey,
		encrypter:  encrypter,
	}, nil
}

func (s *Service) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{}
	for k, v := range data.Extra {
		claims[k] = v
	}
	claims["sub"] = data.Subject
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(data.Expiration).Unix()
	if data.UserName != "" {
		claims["username"] = data.UserName
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
}

// Sign signs the token and seals the result.
func (s *Service) Sign(token *jwt.Token) (string, error) {
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}

	sealed, err := s.encrypter.Encrypt([]byte(signed))
	if err != nil {
		return "", fmt.Errorf("seal token: %w", err)
	}

	compact, err := sealed.CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("serialize sealed token: %w", err)
	}

	return compact, nil
}

func (s *Service) Validate(token string) (jwt.MapClaims, error) {
	sealed, err := jose.ParseEncrypted(token,
		[]jose.KeyAlgorithm{jose.DIRECT},
		[]jose.ContentEncryption{jose.A256GCM})
	if err != nil {
		return nil, fmt.Errorf("parse sealed token: %w: %w", err, ErrTokenNotValid)
	}

	signed, err := sealed.Decrypt(s.sealingKey)
	if err != nil {
		return nil, fmt.Errorf("open sealed token: %w: %w", err, ErrTokenNotValid)
	}

	jwtToken, err := jwt.Parse(string(signed), func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS512 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("jwt parse: %w", ErrTokenExpired)
		}
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("jwt claims type assertion failed")
	}

	expVal, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing exp claim: %w", ErrTokenNotValid)
	}
	if int64(expVal) < TimeNow().Unix() {
		return nil, fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0), ErrTokenExpired)
	}

	return claims, nil
}

func deriveKey(secret []byte, info string, size int) ([]byte, error) {
	key := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), key); err != nil {
		return nil, err
	}
	return key, nil
}
