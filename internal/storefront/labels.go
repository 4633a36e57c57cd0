package storefront

import "strconv"

// Labels are the fixed display strings of the storefront page.
type Labels struct {
	Shop            string `json:"shop"`
	Tagline         string `json:"tagline"`
	HeroBadge       string `json:"hero_badge"`
	HeroTitle       string `json:"hero_title"`
	HeroSubtitle    string `json:"hero_subtitle"`
	BrowseCatalog   string `json:"browse_catalog"`
	Filters         string `json:"filters"`
	Price           string `json:"price"`
	Categories      string `json:"categories"`
	Brands          string `json:"brands"`
	ResetFilters    string `json:"reset_filters"`
	Catalog         string `json:"catalog"`
	NothingFound    string `json:"nothing_found"`
	NothingFoundTip string `json:"nothing_found_tip"`
	Cart            string `json:"cart"`
	CartEmpty       string `json:"cart_empty"`
	Total           string `json:"total"`
	Checkout        string `json:"checkout"`
	Currency        string `json:"currency"`
}

func DefaultLabels() Labels {
	return Labels{
		Shop:            "NeoShop",
		Tagline:         "Ваш стиль — наша миссия",
		HeroBadge:       "Новая коллекция 2024",
		HeroTitle:       "Стиль для тех, кто всегда в движении",
		HeroSubtitle:    "Откройте для себя самые крутые товары сезона — от электроники до уличной моды",
		BrowseCatalog:   "Смотреть каталог",
		Filters:         "Фильтры",
		Price:           "Цена",
		Categories:      "Категории",
		Brands:          "Бренды",
		ResetFilters:    "Сбросить фильтры",
		Catalog:         "Каталог товаров",
		NothingFound:    "Товары не найдены",
		NothingFoundTip: "Попробуйте изменить фильтры",
		Cart:            "Корзина",
		CartEmpty:       "Корзина пуста",
		Total:           "Итого:",
		Checkout:        "Оформить заказ",
		Currency:        "₽",
	}
}

// FormatPrice renders an amount the way the page shows it, e.g. "4990 ₽".
func (l Labels) FormatPrice(amount int) string {
	return strconv.Itoa(amount) + " " + l.Currency
}
