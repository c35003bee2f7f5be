// Package dotenv подгружает .env и применяет флаги командной строки поверх окружения.
package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const DefaultFile = ".env"

// Load читает файлы в окружение без перезаписи уже выставленных переменных.
// Флаг -port имеет приоритет над PORT из файла и окружения.
func Load(fs *flag.FlagSet, args []string, filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{DefaultFile}
	}
	if err := godotenv.Load(filenames...); err != nil {
		return fmt.Errorf("load %v: %w", filenames, err)
	}

	var portFlag string
	fs.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}

// LoadIfExists - то же, что Load, но отсутствие файла не ошибка.
func LoadIfExists(fs *flag.FlagSet, args []string, filename string) (bool, error) {
	if _, err := os.Stat(filename); err != nil {
		return false, nil
	}
	return true, Load(fs, args, filename)
}
