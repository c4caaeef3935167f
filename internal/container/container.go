package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/arkanlabs/newsletter-api/config"
	"github.com/arkanlabs/newsletter-api/pkg/helpers"
	"github.com/arkanlabs/newsletter-api/pkg/mailer"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	emailClient *mailer.Client
	rabbitPub   *helpers.RabbitPublisher
	tokenIssuer *helpers.TokenIssuer
)

func SetConfig(c *config.Config)  { cfg = c }
func GetConfig() *config.Config   { return cfg }
func SetLogger(l *logrus.Logger)  { logger = l }
func GetLogger() *logrus.Logger   { return logger }
func SetPGPool(p *pgxpool.Pool)   { pgPool = p }
func GetPGPool() *pgxpool.Pool    { return pgPool }
func SetRedis(r *redis.Client)    { redisClient = r }
func GetRedis() *redis.Client     { return redisClient }
func SetEmail(c *mailer.Client)   { emailClient = c }
func GetEmail() *mailer.Client    { return emailClient }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }

func SetTokenIssuer(t *helpers.TokenIssuer) { tokenIssuer = t }
func GetTokenIssuer() *helpers.TokenIssuer {
	if tokenIssuer != nil {
		return tokenIssuer
	}
	tokenIssuer = helpers.NewTokenIssuer()
	return tokenIssuer
}
