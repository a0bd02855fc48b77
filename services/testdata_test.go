package services

const roomJSON = `{
  "_id": "665f1c2e9b1d4a0012345678",
  "name": "Phòng trọ gần chợ Bến Thành",
  "type": "studio",
  "price": 3500000,
  "accommodation": {"address": {"ward": "Phường Bến Nghé", "district": "Quận 1", "city": "Hồ Chí Minh"}},
  "description": "Phòng mới sơn, có cửa sổ",
  "capacity": 2,
  "size": 25.5,
  "createdAt": "2024-05-01T03:00:00Z",
  "isAvailable": true,
  "images": ["https://img.example/1.jpg", "https://img.example/2.jpg"],
  "amenities": ["wifi", "rooftop_garden"],
  "utilityRates": {
    "water": {"type": "per-unit", "rate": 20000},
    "electricity": {"type": "per-unit", "rate": 3500},
    "internet": {"type": "fixed", "rate": 100000}
  },
  "owner": {"name": "Cô Lan", "phone": "0901234567"}
}`
