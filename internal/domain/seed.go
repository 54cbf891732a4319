package domain

// seedCatalog is the built-in catalog used when the persistence layer holds
// no products yet. Prices are in EGP.
var seedCatalog = []Product{
	{
		ID:            "p1",
		NameAr:        "سماعات بلوتوث لاسلكية",
		NameEn:        "Wireless Bluetooth Headphones",
		DescriptionAr: "سماعات رأس لاسلكية بجودة صوت عالية وعزل للضوضاء",
		DescriptionEn: "Wireless over-ear headphones with rich sound and noise isolation",
		Price:         750,
		OldPrice:      950,
		Category:      CategoryElectronics,
		Image:         "https://images.bazarna.shop/products/p1.jpg",
		IsOffer:       true,
	},
	{
		ID:            "p2",
		NameAr:        "كريم مرطب بالصبار",
		NameEn:        "Aloe Vera Moisturizing Cream",
		DescriptionAr: "كريم مرطب طبيعي للبشرة الجافة والحساسة",
		DescriptionEn: "Natural moisturizer for dry and sensitive skin",
		Price:         120,
		Category:      CategoryCosmetics,
		Image:         "https://images.bazarna.shop/products/p2.jpg",
	},
	{
		ID:            "p3",
		NameAr:        "ساعة ذكية رياضية",
		NameEn:        "Sports Smart Watch",
		DescriptionAr: "ساعة ذكية بشاشة لمس وتتبع للياقة البدنية",
		DescriptionEn: "Touchscreen smart watch with fitness tracking",
		Price:         1200,
		Category:      CategoryElectronics,
		Image:         "https://images.bazarna.shop/products/p3.jpg",
	},
	{
		ID:            "p4",
		NameAr:        "قميص قطني كلاسيكي",
		NameEn:        "Classic Cotton Shirt",
		DescriptionAr: "قميص رجالي قطن مصري مريح لكل المناسبات",
		DescriptionEn: "Comfortable Egyptian cotton shirt for every occasion",
		Price:         350,
		Category:      CategoryFashion,
		Image:         "https://images.bazarna.shop/products/p4.jpg",
	},
	{
		ID:            "p5",
		NameAr:        "عطر شرقي فاخر",
		NameEn:        "Luxury Oriental Perfume",
		DescriptionAr: "عطر شرقي بروائح العود والمسك يدوم طويلا",
		DescriptionEn: "Long-lasting oriental fragrance with oud and musk notes",
		Price:         480,
		OldPrice:      600,
		Category:      CategoryCosmetics,
		Image:         "https://images.bazarna.shop/products/p5.jpg",
		IsOffer:       true,
	},
	{
		ID:            "p6",
		NameAr:        "حقيبة يد جلدية",
		NameEn:        "Leather Handbag",
		DescriptionAr: "حقيبة نسائية من الجلد الطبيعي بتصميم عصري",
		DescriptionEn: "Genuine leather handbag with a modern design",
		Price:         650,
		Category:      CategoryFashion,
		Image:         "https://images.bazarna.shop/products/p6.jpg",
	},
	{
		ID:            "p7",
		NameAr:        "مصباح مكتب معدني",
		NameEn:        "Metal Desk Lamp",
		DescriptionAr: "مصباح مكتب بذراع متحرك وإضاءة دافئة",
		DescriptionEn: "Adjustable desk lamp with warm lighting",
		Price:         220,
		Category:      CategoryOther,
		Image:         "https://images.bazarna.shop/products/p7.jpg",
	},
}

// SeedCatalog returns a copy of the built-in default catalog.
func SeedCatalog() []Product {
	out := make([]Product, len(seedCatalog))
	copy(out, seedCatalog)
	return out
}
