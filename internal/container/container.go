package container

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adityarmn/go-todo-app/config"
	"github.com/adityarmn/go-todo-app/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg     *config.Config
	logger  *logrus.Logger
	mongoDB *mongo.Database

	jwtManager *helpers.JWTManager
)

func SetConfig(c *config.Config) { cfg = c }

func GetConfig() *config.Config { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }

func GetLogger() *logrus.Logger { return logger }

func SetMongoDB(db *mongo.Database) { mongoDB = db }

func GetMongoDB() *mongo.Database { return mongoDB }

func SetJWT(m *helpers.JWTManager) { jwtManager = m }

func GetJWT() *helpers.JWTManager { return jwtManager }
