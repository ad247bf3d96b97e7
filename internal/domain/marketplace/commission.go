package marketplace

import (
	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// commissionAmount applies c to a line total. Global mode defers to the
// marketplace-wide commission. It returns false when nothing is configured.
func commissionAmount(c, global entities.Commission, total decimal.Decimal) (decimal.Decimal, bool) {
	if c.Mode == entities.CommissionModeGlobal {
		if global.Mode == entities.CommissionModeGlobal {
			return decimal.Zero, false
		}
		c = global
	}

	switch c.Mode {
	case entities.CommissionModeFixed:
		return c.Fixed, true
	case entities.CommissionModePercent:
		return total.Mul(c.Percent).Div(hundred), true
	case entities.CommissionModePercentFixed:
		return total.Mul(c.Percent).Div(hundred).Add(c.Fixed), true
	default:
		return decimal.Zero, false
	}
}
