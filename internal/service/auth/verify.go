package auth

import (
	"github.com/go-chi/jwtauth/v5"
	jwx "github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/appdotbuilder/hrd-manager/internal/pkg/jwt"
)

func jwtauthVerify(svc jwt.Service, tokenString string) (jwx.Token, error) {
	return jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
}
