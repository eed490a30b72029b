package envfile

import (
	"github.com/joho/godotenv"
)

// Load reads a variables file the way dotenv consumers of it will.
func Load(path string) (map[string]string, error) {
	return godotenv.Read(path)
}
