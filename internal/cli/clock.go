package cli

import (
	"time"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
)

// now is replaced in tests.
var now = time.Now

func today() string {
	return now().Format(domain.DateLayout)
}
