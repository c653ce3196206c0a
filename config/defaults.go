package config

import "traffic-density/internal/domain/entity"

// DefaultCameras встроенная таблица камер. Пути эталонов относительны REFERENCE_DIR.
func DefaultCameras() []entity.Camera {
	return []entity.Camera{
		{
			ID:            "NPE (E10) CAM 23 BRIDGE 19 KM12.8 WB",
			URL:           "https://c2.fgies.com//sd-npe/NPE-23.jpg?",
			ReferencePath: "NPE-23-CAPTUREWITHINGREENLINE.jpg",
		},
		{
			ID:            "SRT (E23) CAM 03 SEK17 KM2.6 EB",
			URL:           "https://c12.fgies.com//sd-srt/SRT-03.jpg?",
			ReferencePath: "SRT-03-CAPTUREWITHINGREENLINE.jpg",
		},
		{
			ID:            "SRT (E23) CAM 06 KIARA KM5.65 MED",
			URL:           "https://c12.fgies.com//sd-srt/SRT-06.jpg?",
			ReferencePath: "SRT-06-CAPTUREWITHINGREENLINE.jpg",
		},
		{
			ID:            "SPE (E39) CAM 02 SEPUTIH KM2.2 NB",
			URL:           "https://c12.fgies.com//sd-spe/SPE-02.jpg?",
			ReferencePath: "SPE-02-CAPTUREWITHINGREENLINE.jpg",
		},
		{
			ID:            "SPE (E39) CAM 03 BUKIT DESA KM3.1 NB",
			URL:           "https://c12.fgies.com//sd-spe/SPE-03.jpg?",
			ReferencePath: "SPE-03-CAPTUREWITHINGREENLINE.jpg",
		},
	}
}

// DefaultRoutes встроенная таблица маршрутов
func DefaultRoutes() []entity.Route {
	return []entity.Route{
		{Origin: "GATE 1 (KL GATE)", Destination: "NPE (E10) CAM 14 PBAHARU KM13.3 EB", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "NPE (E10) CAM 23 BRIDGE 19 KM12.8 WB", Destination: "GATE 1 (KL GATE)", Direction: entity.DirectionEntering, ActiveCamera: true},
		{Origin: "NPE (E10) CAM 24 VMS BANGSAR KM14 WB", Destination: "GATE 1 (KL GATE)", Direction: entity.DirectionEntering, ActiveCamera: false},
		{Origin: "SRT (E23) CAM 03 SEK17 KM2.6 EB", Destination: "GATE 2 (PJ GATE)", Direction: entity.DirectionEntering, ActiveCamera: true},
		{Origin: "SRT (E23) CAM 06 KIARA KM5.65 MED", Destination: "GATE 4 (DAMANSARA GATE)", Direction: entity.DirectionEntering, ActiveCamera: true},
		{Origin: "SPE (E39) CAM 01 KERINCHI KM0.2 NB", Destination: "GATE 1 (KL GATE)", Direction: entity.DirectionEntering, ActiveCamera: false},
		{Origin: "SPE (E39) CAM 02 SEPUTIH KM2.2 NB", Destination: "GATE 1 (KL GATE)", Direction: entity.DirectionEntering, ActiveCamera: true},
		{Origin: "GATE 1 (KL GATE)", Destination: "SPE (E39) CAM 03 BUKIT DESA KM3.1 NB", Direction: entity.DirectionLeaving, ActiveCamera: true},
		{Origin: "FSKTM", Destination: "GATE 1 (KL GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "FSKTM", Destination: "GATE 2 (PJ GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "FSKTM", Destination: "GATE 3 (MAHSA GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "FSKTM", Destination: "GATE 4 (DAMANSARA GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 1 (KL GATE)", Destination: "FSKTM", Direction: entity.DirectionEntering, ActiveCamera: false},
		{Origin: "GATE 1 (KL GATE)", Destination: "GATE 2 (PJ GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 1 (KL GATE)", Destination: "GATE 3 (MAHSA GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 1 (KL GATE)", Destination: "GATE 4 (DAMANSARA GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 2 (PJ GATE)", Destination: "FSKTM", Direction: entity.DirectionEntering, ActiveCamera: false},
		{Origin: "GATE 2 (PJ GATE)", Destination: "GATE 1 (KL GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 2 (PJ GATE)", Destination: "GATE 3 (MAHSA GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 2 (PJ GATE)", Destination: "GATE 4 (DAMANSARA GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 3 (MAHSA GATE)", Destination: "FSKTM", Direction: entity.DirectionEntering, ActiveCamera: false},
		{Origin: "GATE 3 (MAHSA GATE)", Destination: "GATE 2 (PJ GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 3 (MAHSA GATE)", Destination: "GATE 1 (KL GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 3 (MAHSA GATE)", Destination: "GATE 4 (DAMANSARA GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 4 (DAMANSARA GATE)", Destination: "FSKTM", Direction: entity.DirectionEntering, ActiveCamera: false},
		{Origin: "GATE 4 (DAMANSARA GATE)", Destination: "GATE 2 (PJ GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 4 (DAMANSARA GATE)", Destination: "GATE 3 (MAHSA GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
		{Origin: "GATE 4 (DAMANSARA GATE)", Destination: "GATE 1 (KL GATE)", Direction: entity.DirectionLeaving, ActiveCamera: false},
	}
}
