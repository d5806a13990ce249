package lidio

import (
	"fmt"

	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"
)

// BasketItem is one priced line of a payment link. Required fields are checked by ToMap.
type BasketItem struct {
	values      map[string]any
	marketplace *BasketItemMarketplace
}

type BasketItemMarketplace struct {
	SubsellerID           any
	ItemTotalPrice        any
	SubsellerPayoutAmount any
}

type basketItemField struct {
	name string
	set  func(item *BasketItem, value any) error
}

var basketItemFields = []basketItemField{
	{name: "name", set: setBasketItemString("name")},
	{name: "category1", set: setBasketItemString("category1")},
	{name: "category2", set: setBasketItemString("category2")},
	{name: "category3", set: setBasketItemString("category3")},
	{name: "quantity", set: setBasketItemQuantity},
	{name: "unitPrice", set: setBasketItemNumber("unitPrice")},
	{name: "criticalCategory", set: setBasketItemEnum("criticalCategory", constvars.LidioCriticalBasketItemCategories)},
	{name: "isParticipationBankingCompatible", set: setBasketItemBool("isParticipationBankingCompatible")},
	{name: "acquirerCategoryCode", set: setBasketItemString("acquirerCategoryCode")},
	{name: "itemIdGivenByMerchant", set: setBasketItemString("itemIdGivenByMerchant")},
	{name: "itemType", set: setBasketItemEnum("itemType", constvars.LidioBasketItemTypes)},
	{name: "marketplace", set: setBasketItemMarketplace},
	{name: "extendedItemInfo", set: setBasketItemString("extendedItemInfo")},
}

func findBasketItemField(name string) (basketItemField, bool) {
	for _, field := range basketItemFields {
		if field.name == name {
			return field, true
		}
	}
	return basketItemField{}, false
}

// NewBasketItem assigns every option through its field setter. Unknown keys are rejected.
func NewBasketItem(options map[string]any) (*BasketItem, error) {
	if len(options) == 0 {
		return nil, exceptions.ErrEmptyField("basketItem")
	}

	item := &BasketItem{values: make(map[string]any)}
	for key, value := range options {
		if err := item.Set(key, value); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (i *BasketItem) Set(key string, value any) error {
	field, ok := findBasketItemField(key)
	if !ok {
		return exceptions.ErrUnknownField("basketItems." + key)
	}
	return field.set(i, value)
}

func (i *BasketItem) Get(key string) (any, bool) {
	if key == "marketplace" {
		return i.marketplace, i.marketplace != nil
	}
	value, ok := i.values[key]
	return value, ok
}

func (i *BasketItem) Name() string {
	name, _ := i.values["name"].(string)
	return name
}

// ToMap serializes the item and verifies name, quantity and unitPrice are present.
func (i *BasketItem) ToMap() (map[string]any, error) {
	result := make(map[string]any, len(i.values)+1)
	for _, field := range basketItemFields {
		if field.name == "marketplace" {
			continue
		}
		if value, ok := i.values[field.name]; ok {
			result[field.name] = value
		}
	}

	if i.marketplace != nil {
		marketplace, err := i.marketplace.toMap(i.Name())
		if err != nil {
			return nil, err
		}
		result["marketplace"] = marketplace
	}

	for _, required := range []string{"name", "quantity", "unitPrice"} {
		if _, ok := result[required]; !ok {
			return nil, exceptions.ErrRequiredFieldMissing(basketItemFieldPath(i.Name(), required))
		}
	}
	return result, nil
}

func (m *BasketItemMarketplace) toMap(itemName string) (map[string]any, error) {
	if m.SubsellerID == nil {
		return nil, exceptions.ErrRequiredFieldMissing(basketItemFieldPath(itemName, "marketplace.subsellerId"))
	}
	if m.ItemTotalPrice == nil {
		return nil, exceptions.ErrRequiredFieldMissing(basketItemFieldPath(itemName, "marketplace.itemTotalPrice"))
	}

	result := map[string]any{
		"subsellerId":    m.SubsellerID,
		"itemTotalPrice": m.ItemTotalPrice,
	}
	if m.SubsellerPayoutAmount != nil {
		result["subsellerPayoutAmount"] = m.SubsellerPayoutAmount
	}
	return result, nil
}

func basketItemFieldPath(itemName, field string) string {
	if itemName == "" {
		return "basketItems." + field
	}
	return fmt.Sprintf("basketItems[%s].%s", itemName, field)
}

func setBasketItemString(name string) func(*BasketItem, any) error {
	return func(item *BasketItem, value any) error {
		s, err := asString("basketItems."+name, value)
		if err != nil {
			return err
		}
		item.values[name] = s
		return nil
	}
}

func setBasketItemBool(name string) func(*BasketItem, any) error {
	return func(item *BasketItem, value any) error {
		b, err := asBool("basketItems."+name, value)
		if err != nil {
			return err
		}
		item.values[name] = b
		return nil
	}
}

func setBasketItemNumber(name string) func(*BasketItem, any) error {
	return func(item *BasketItem, value any) error {
		d, ok := toDecimal(value)
		if !ok {
			return exceptions.ErrInvalidFieldType("basketItems."+name, "number", value)
		}
		item.values[name] = d.InexactFloat64()
		return nil
	}
}

func setBasketItemEnum(name string, allowed []string) func(*BasketItem, any) error {
	return func(item *BasketItem, value any) error {
		s, err := asString("basketItems."+name, value)
		if err != nil {
			return err
		}
		if err := checkEnum("basketItems."+name, s, allowed); err != nil {
			return err
		}
		item.values[name] = s
		return nil
	}
}

func setBasketItemQuantity(item *BasketItem, value any) error {
	d, ok := toDecimal(value)
	if !ok || !d.IsInteger() {
		return exceptions.ErrInvalidFieldType("basketItems.quantity", "integer", value)
	}
	item.values["quantity"] = int(d.IntPart())
	return nil
}

func setBasketItemMarketplace(item *BasketItem, value any) error {
	switch v := value.(type) {
	case *BasketItemMarketplace:
		item.marketplace = v
		return nil
	case BasketItemMarketplace:
		item.marketplace = &v
		return nil
	}

	options, err := asMap("basketItems.marketplace", value)
	if err != nil {
		return err
	}

	marketplace := &BasketItemMarketplace{}
	for key, option := range options {
		switch key {
		case "subsellerId":
			marketplace.SubsellerID = option
		case "itemTotalPrice":
			marketplace.ItemTotalPrice = option
		case "subsellerPayoutAmount":
			marketplace.SubsellerPayoutAmount = option
		default:
			return exceptions.ErrUnknownField("basketItems.marketplace." + key)
		}
	}
	item.marketplace = marketplace
	return nil
}
