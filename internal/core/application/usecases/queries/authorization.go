package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/user"
	"foodorders/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// actorIsAdmin reports whether the acting user holds administrative
// rights. Query handlers read the permissions column directly instead of
// rehydrating the user aggregate.
func actorIsAdmin(ctx context.Context, db *gorm.DB, userID kernel.UUID) (bool, error) {
	var permissions pq.StringArray

	row := db.WithContext(ctx).Raw(`
		SELECT permissions
		FROM users
		WHERE id = ?
	`, userID.Bytes()).Row()

	if err := row.Scan(&permissions); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, errs.NewObjectNotFoundError("userID", userID)
		}
		return false, err
	}

	for _, permission := range permissions {
		if permission == user.PermissionReadUsers {
			return true, nil
		}
	}
	return false, nil
}
