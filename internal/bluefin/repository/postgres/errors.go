package postgres

import (
	"errors"
	"strings"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func mapTaskError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return model.ErrTaskAlreadyExists
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// taskPattern matches every task named "<prefix> - ...".
func taskPattern(prefix string) string {
	return likeEscaper.Replace(prefix) + " - %"
}
