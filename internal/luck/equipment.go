package luck

import (
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/utils"
)

// SlotLuck evaluates the luck attribute of one item worn in slot.
// Order: base 0 plus ADD_NUMBER, times (1 + sum of ADD_SCALAR), times the product of (1 + MULTIPLY_SCALAR_1).
// Modifiers scoped to another slot are ignored.
func SlotLuck(item domain.EquippedItem, slot domain.EquipmentSlot) float64 {
	var addNumber, addScalar float64
	multiply := 1.0

	for _, m := range item.LuckModifiers {
		if !m.AppliesTo(slot) {
			continue
		}
		switch m.Operation {
		case domain.OpAddNumber:
			addNumber += m.Amount
		case domain.OpAddScalar:
			addScalar += m.Amount
		case domain.OpMultiplyScalar1:
			multiply *= 1 + m.Amount
		}
	}

	return (BaseLuck + addNumber) * (1 + addScalar) * multiply
}

// SlotBreakdown is the raw and clamped luck of every slot
type SlotBreakdown struct {
	Raw     map[domain.EquipmentSlot]float64
	Clamped map[domain.EquipmentSlot]float64
	Total   float64
}

// EquipmentLuck clamps each slot to [minValue, maxValue], sums them, and clamps
// the sum to six times those bounds.
func EquipmentLuck(equipment map[domain.EquipmentSlot]domain.EquippedItem, minValue, maxValue float64) SlotBreakdown {
	b := SlotBreakdown{
		Raw:     make(map[domain.EquipmentSlot]float64, len(domain.AllEquipmentSlots)),
		Clamped: make(map[domain.EquipmentSlot]float64, len(domain.AllEquipmentSlots)),
	}

	var sum float64
	for _, slot := range domain.AllEquipmentSlots {
		item, ok := equipment[slot]
		if !ok {
			b.Raw[slot] = 0
			b.Clamped[slot] = 0
			continue
		}
		raw := SlotLuck(item, slot)
		clamped := utils.Clamp(raw, minValue, maxValue)
		b.Raw[slot] = raw
		b.Clamped[slot] = clamped
		sum += clamped
	}

	slots := float64(len(domain.AllEquipmentSlots))
	b.Total = utils.Clamp(sum, minValue*slots, maxValue*slots)
	return b
}
