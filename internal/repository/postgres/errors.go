package postgres

import (
	"fmt"

	"github.com/motionhq/motion/api/internal/database"
)

func wrapQueryError(err error) error {
	return fmt.Errorf("%w: %v", database.ErrQuery, err)
}
