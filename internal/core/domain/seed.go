package domain

// DefaultCatalogData returns the built-in reference data used when no
// external catalog source is configured.
func DefaultCatalogData() CatalogData {
	return CatalogData{
		Products: []Product{
			{
				ID:          "pvc-panel",
				Name:        "PVC 面板",
				Specs:       "120cm x 240cm, 厚度 15mm",
				MinOrder:    200,
				PriceRange:  [2]float64{5.2, 6.8},
				Description: "适用于室内装修的防火、防潮装饰面板。",
			},
			{
				ID:          "aluminum-frame",
				Name:        "铝合金门窗框",
				Specs:       "6063-T5, 氧化银色, 1.2mm 壁厚",
				MinOrder:    300,
				PriceRange:  [2]float64{8.5, 12.3},
				Description: "轻质高强度，可定制长度和表面处理。",
			},
			{
				ID:          "lighting-kit",
				Name:        "LED 照明套件",
				Specs:       "AC 110-240V, 50W, 4000K 中性光",
				MinOrder:    150,
				PriceRange:  [2]float64{12.0, 18.5},
				Description: "包含灯具、驱动电源和安装配件的整套解决方案。",
			},
		},
		Containers: []ContainerType{
			{
				ID:       Container20GP,
				Name:     "20GP 小柜",
				Capacity: 1000,
				Notes:    "适合小批量或重量型货物，参考容量 1000 件/标准件。",
			},
			{
				ID:       Container40HQ,
				Name:     "40HQ 大柜",
				Capacity: 2200,
				Notes:    "高箱大柜，参考容量 2200 件/标准件，适合大批量出货。",
			},
		},
		PaymentMethods: []PaymentMethod{
			{ID: "tt-advance", Name: "T/T 预付 30%", Description: "出货前支付尾款 70%。"},
			{ID: "lc-sight", Name: "L/C at Sight", Description: "即期信用证，适用于大额和长期合作。"},
			{ID: "oa-30", Name: "O/A 30 天", Description: "账期 30 天，需信用审批。"},
		},
		Banks: []Bank{
			{
				ID:            "icbc-shenzhen",
				Name:          "中国工商银行深圳分行",
				AccountName:   "Shenzhen Buildmate Co., Ltd.",
				AccountNumber: "6222001234567890",
				SWIFT:         "ICBKCNBJSZN",
				Address:       "深圳市南山区科技园中区 9 号",
			},
			{
				ID:            "hsbc-hk",
				Name:          "HSBC Hong Kong",
				AccountName:   "Buildmate Trading Limited",
				AccountNumber: "102-123456-001",
				SWIFT:         "HSBCHKHHHKH",
				Address:       "1 Queen's Road Central, Hong Kong",
			},
		},
		Incoterms:  []string{"FOB", "CIF", "EXW", "DAP"},
		Currencies: []string{"USD", "CNY", "EUR", "GBP"},
	}
}
