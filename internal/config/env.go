package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr    string
	GinMode    string
	MongoURI   string
	MongoDB    string
	JWTSecret  string
	CORSOrigin []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	mongoURI := strings.TrimSpace(os.Getenv("MONGO_URI"))
	if mongoURI == "" {
		mongoURI = "mongodb://127.0.0.1:27017"
	}

	mongoDB := strings.TrimSpace(os.Getenv("MONGO_DB"))
	if mongoDB == "" {
		mongoDB = "ebus_tickets"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-me"
	}

	var origins []string
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return Env{
		AppAddr:    appAddr,
		GinMode:    strings.TrimSpace(os.Getenv("GIN_MODE")),
		MongoURI:   mongoURI,
		MongoDB:    mongoDB,
		JWTSecret:  jwtSecret,
		CORSOrigin: origins,
	}
}
