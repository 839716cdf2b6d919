package loans

import (
	"github.com/iwvelando/homeloan-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// ComputePropertyBreakdown layers the reservation, government and
// construction fees on top of a listing's base price. Nil configs fall back
// to their defaults; inactive configs contribute nothing.
func ComputePropertyBreakdown(property PropertyInput, reservation *ReservationFeeConfig,
	government *GovernmentFeeConfig, construction *ConstructionFeeConfig) (PropertyBreakdown, error) {

	if err := validateProperty(property); err != nil {
		return PropertyBreakdown{}, err
	}

	reservationCfg, governmentCfg, constructionCfg := resolveFeeConfigs(reservation, government, construction)
	if err := validateFeeConfigs(reservationCfg, governmentCfg, constructionCfg); err != nil {
		return PropertyBreakdown{}, err
	}

	basePrice := decimal.NewFromFloat(property.BasePrice)
	breakdown := PropertyBreakdown{
		BasePrice:    basePrice,
		PropertyType: property.PropertyType,
	}

	if property.PropertyType == ModelHouse {
		lotPrice := decimal.NewFromFloat(*property.LotPrice)
		houseCost := decimal.NewFromFloat(*property.HouseConstructionCost)
		lotFees := decimal.Zero
		constructionFees := decimal.Zero
		if constructionCfg.IsActive {
			lotFees = mathutil.ApplyPercentage(lotPrice, decimal.NewFromFloat(constructionCfg.LotFeeRate))
			constructionFees = mathutil.ApplyPercentage(houseCost, decimal.NewFromFloat(constructionCfg.HouseConstructionFeeRate))
		}
		breakdown.LotPrice = &lotPrice
		breakdown.HouseConstructionCost = &houseCost
		breakdown.LotFees = &lotFees
		breakdown.ConstructionFees = &constructionFees
	}

	breakdown.ReservationFee = ReservationFee(property.PropertyType, reservationCfg)
	breakdown.GovernmentFeesAndTaxes = GovernmentFeesAndTaxes(basePrice, governmentCfg)

	total := basePrice.Add(breakdown.ReservationFee).Add(breakdown.GovernmentFeesAndTaxes)
	if breakdown.LotFees != nil {
		total = total.Add(*breakdown.LotFees)
	}
	if breakdown.ConstructionFees != nil {
		total = total.Add(*breakdown.ConstructionFees)
	}
	breakdown.TotalAllInPrice = total

	return breakdown, nil
}

// ReservationFee selects the reservation fee for a property type.
func ReservationFee(propertyType PropertyType, cfg ReservationFeeConfig) decimal.Decimal {
	if !cfg.IsActive {
		return decimal.Zero
	}
	if propertyType == ModelHouse {
		return decimal.NewFromFloat(cfg.ModelHouse)
	}
	return decimal.NewFromFloat(cfg.LotOnly)
}

// GovernmentFeesAndTaxes applies the two-tier rule: a base price at or above
// the threshold pays the fixed amount, anything below pays a percentage.
func GovernmentFeesAndTaxes(basePrice decimal.Decimal, cfg GovernmentFeeConfig) decimal.Decimal {
	if !cfg.IsActive {
		return decimal.Zero
	}
	if basePrice.GreaterThanOrEqual(decimal.NewFromFloat(cfg.FixedAmountThreshold)) {
		return decimal.NewFromFloat(cfg.FixedAmount)
	}
	return mathutil.ApplyPercentage(basePrice, decimal.NewFromFloat(cfg.PercentageRate))
}

func validateProperty(property PropertyInput) error {
	if !mathutil.IsFinite(property.BasePrice) || property.BasePrice <= 0 {
		return invalidInput("basePrice", property.BasePrice, "must be a positive finite number")
	}
	if !property.PropertyType.Valid() {
		return invalidInput("propertyType", property.PropertyType, "must be model-house or lot-only")
	}
	if property.PropertyType != ModelHouse {
		return nil
	}
	if err := validateComponentPrice("lotPrice", property.LotPrice); err != nil {
		return err
	}
	return validateComponentPrice("houseConstructionCost", property.HouseConstructionCost)
}

func validateComponentPrice(field string, value *float64) error {
	if value == nil {
		return invalidInput(field, nil, "is required for model houses")
	}
	if !mathutil.IsFinite(*value) || *value < 0 {
		return invalidInput(field, *value, "must be a finite number greater than or equal to zero")
	}
	return nil
}

func resolveFeeConfigs(reservation *ReservationFeeConfig, government *GovernmentFeeConfig,
	construction *ConstructionFeeConfig) (ReservationFeeConfig, GovernmentFeeConfig, ConstructionFeeConfig) {

	reservationCfg := DefaultReservationFeeConfig()
	if reservation != nil {
		reservationCfg = *reservation
	}
	governmentCfg := DefaultGovernmentFeeConfig()
	if government != nil {
		governmentCfg = *government
	}
	constructionCfg := DefaultConstructionFeeConfig()
	if construction != nil {
		constructionCfg = *construction
	}
	return reservationCfg, governmentCfg, constructionCfg
}

func validateFeeConfigs(reservation ReservationFeeConfig, government GovernmentFeeConfig, construction ConstructionFeeConfig) error {
	if reservation.IsActive {
		if err := validateSetting("reservationFees.modelHouse", reservation.ModelHouse); err != nil {
			return err
		}
		if err := validateSetting("reservationFees.lotOnly", reservation.LotOnly); err != nil {
			return err
		}
	}
	if government.IsActive {
		if err := validateSetting("governmentFees.fixedAmountThreshold", government.FixedAmountThreshold); err != nil {
			return err
		}
		if err := validateSetting("governmentFees.fixedAmount", government.FixedAmount); err != nil {
			return err
		}
		if err := validateSetting("governmentFees.percentageRate", government.PercentageRate); err != nil {
			return err
		}
	}
	if construction.IsActive {
		if err := validateSetting("constructionFees.lotFeeRate", construction.LotFeeRate); err != nil {
			return err
		}
		if err := validateSetting("constructionFees.houseConstructionFeeRate", construction.HouseConstructionFeeRate); err != nil {
			return err
		}
	}
	return nil
}

func validateSetting(field string, value float64) error {
	if !mathutil.IsFinite(value) || value < 0 {
		return configurationError(field, "must be a finite number greater than or equal to zero")
	}
	return nil
}
