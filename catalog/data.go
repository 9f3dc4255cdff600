package catalog

import "storefront-service/models"

// Seed data for the demo merchant. Real deployments load products from
// MongoDB instead (see MongoSource); zones stay static either way.

var seedProducts = []models.Product{
	{
		ID:               "p1",
		Slug:             "spaghetti-di-grano-duro-500g",
		Name:             "Spaghetti di Grano Duro",
		Category:         "Pastas",
		Price:            6.5,
		Currency:         "USD",
		Unit:             "500g",
		Origin:           "Italia",
		ShortDescription: "Pasta italiana clásica, perfecta para carbonara y pomodoro.",
		Description:      "Spaghetti de sémola de trigo duro, textura firme y cocción uniforme. Ideal para recetas tradicionales italianas.",
		Ingredients:      "Sémola de trigo duro, agua.",
		ImageURL:         "https://images.unsplash.com/photo-1526318896980-cf78c088247c?auto=format&fit=crop&w=1400&q=80",
		Featured:         true,
	},
	{
		ID:               "p2",
		Slug:             "penne-rigate-500g",
		Name:             "Penne Rigate",
		Category:         "Pastas",
		Price:            6.9,
		Currency:         "USD",
		Unit:             "500g",
		Origin:           "Italia",
		ShortDescription: "Ideal para salsas cremosas: pesto, alfredo, 4 quesos.",
		Description:      "Penne con estrías para atrapar mejor la salsa. Perfecta para platos al horno o salsas densas.",
		ImageURL:         "/assets/images/penne.jpg",
	},
	{
		ID:               "p3",
		Slug:             "aceite-oliva-extra-virgen-750ml",
		Name:             "Aceite de Oliva Extra Virgen",
		Category:         "Aceites",
		Price:            14.9,
		Currency:         "USD",
		Unit:             "750ml",
		Origin:           "Toscana, Italia",
		ShortDescription: "Frutado, elegante y perfecto para ensaladas y bruschetta.",
		Description:      "AOVE de primera extracción, sabor equilibrado con notas verdes. Úsalo en crudo para elevar cualquier plato.",
		ImageURL:         "/assets/images/aceite.jpg",
		Featured:         true,
	},
	{
		ID:               "p4",
		Slug:             "salsa-pomodoro-370g",
		Name:             "Salsa Pomodoro",
		Category:         "Salsas",
		Price:            5.5,
		Currency:         "USD",
		Unit:             "370g",
		Origin:           "Italia",
		ShortDescription: "Tomate italiano, simple y auténtica para pasta o pizza.",
		Description:      "Salsa de tomate estilo italiano, lista para calentar y servir. Base ideal para recetas caseras.",
		ImageURL:         "/assets/images/salsa.jpg",
	},
	{
		ID:               "p5",
		Slug:             "parmigiano-reggiano-200g",
		Name:             "Parmigiano Reggiano",
		Category:         "Quesos",
		Price:            12.9,
		Currency:         "USD",
		Unit:             "200g",
		Origin:           "Parma, Italia",
		ShortDescription: "Curación tradicional. Potente, salino, perfecto para rallar.",
		Description:      "Queso duro italiano con maduración tradicional. Úsalo en pastas, risottos o tablas de quesos.",
		ImageURL:         "https://images.unsplash.com/photo-1617196034183-421b4917c92d?auto=format&fit=crop&w=1400&q=80",
		Featured:         true,
	},
	{
		ID:               "p6",
		Slug:             "prosciutto-150g",
		Name:             "Prosciutto (loncheado)",
		Category:         "Embutidos",
		Price:            10.5,
		Currency:         "USD",
		Unit:             "150g",
		Origin:           "Italia",
		ShortDescription: "Suave, delicado y perfecto con pan, melón o burrata.",
		Description:      "Jamón curado italiano, loncheado fino. Ideal para antipasti y tablas.",
		ImageURL:         "/assets/images/prosciutto.jpg",
	},
	{
		ID:               "p7",
		Slug:             "biscotti-almendra-250g",
		Name:             "Biscotti de Almendra",
		Category:         "Dulces",
		Price:            7.9,
		Currency:         "USD",
		Unit:             "250g",
		Origin:           "Italia",
		ShortDescription: "Crujientes, perfectos para café o vin santo.",
		Description:      "Galletas italianas horneadas dos veces, textura crujiente y sabor intenso a almendra.",
		ImageURL:         "/assets/images/biscotti.jpg",
	},
}

var seedZones = []models.DeliveryZone{
	{ID: "habana-vieja", Name: "Habana Vieja", Fee: 2.5},
	{ID: "centro-habana", Name: "Centro Habana", Fee: 2.5},
	{ID: "plaza", Name: "Plaza de la Revolución", Fee: 3.0},
	{ID: "cerro", Name: "Cerro", Fee: 3.0},
	{ID: "10-octubre", Name: "10 de Octubre", Fee: 3.5},
	{ID: "boyeros", Name: "Boyeros", Fee: 4.5},
	{ID: "arroyo-naranjo", Name: "Arroyo Naranjo", Fee: 4.0},
	{ID: "san-miguel", Name: "San Miguel del Padrón", Fee: 4.0},
	{ID: "guanabacoa", Name: "Guanabacoa", Fee: 4.5},
	{ID: "regla", Name: "Regla", Fee: 4.0},
	{ID: "playa", Name: "Playa", Fee: 4.0},
	{ID: "marianao", Name: "Marianao", Fee: 4.0},
	{ID: "la-lisa", Name: "La Lisa", Fee: 4.5},
}

// Zones returns the static delivery zone table.
func Zones() []models.DeliveryZone {
	out := make([]models.DeliveryZone, len(seedZones))
	copy(out, seedZones)
	return out
}
