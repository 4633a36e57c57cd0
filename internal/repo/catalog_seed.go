package repo

import "github.com/rogerio-castellano/storefront/internal/models"

const imageBase = "https://cdn.poehali.dev/projects/26c38740-7c6d-4eaa-b4aa-db62604b09ce/files/"

// SeedProducts returns the fixed NeoShop product list.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Неоновые наушники Pro", Price: 4990, Category: "Электроника", Brand: "SoundMax", Image: imageBase + "25622c0b-8792-4d1d-a0f1-9a5f573cb18e.jpg", Badge: "Хит"},
		{ID: 2, Name: "Кроссовки Urban Style", Price: 7990, Category: "Обувь", Brand: "StreetWear", Image: imageBase + "1d2dee6b-fcb2-4c21-8972-cdc4b2f4fcae.jpg", Badge: "New"},
		{ID: 3, Name: "Рюкзак City Life", Price: 3490, Category: "Аксессуары", Brand: "UrbanGear", Image: imageBase + "fee0dff8-4b56-478a-bbeb-15023c9e8aea.jpg"},
		{ID: 4, Name: "Смарт-часы Neo X", Price: 12990, Category: "Электроника", Brand: "TechLife", Image: imageBase + "25622c0b-8792-4d1d-a0f1-9a5f573cb18e.jpg", Badge: "Хит"},
		{ID: 5, Name: "Футболка Retro Vibe", Price: 1990, Category: "Одежда", Brand: "RetroStyle", Image: imageBase + "fee0dff8-4b56-478a-bbeb-15023c9e8aea.jpg"},
		{ID: 6, Name: "Беспроводная колонка Boom", Price: 5490, Category: "Электроника", Brand: "SoundMax", Image: imageBase + "25622c0b-8792-4d1d-a0f1-9a5f573cb18e.jpg"},
	}
}
