package builders

import (
	"testing"
	"time"

	"viestay/models"
	"viestay/services"

	"github.com/stretchr/testify/require"
)

func sampleRoom() *models.Room {
	created := time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)
	return &models.Room{
		ID:    "665f1c2e9b1d4a0012345678",
		Name:  "Phòng trọ gần chợ Bến Thành",
		Type:  "studio",
		Price: 3500000,
		Accommodation: &models.Accommodation{Address: &models.Address{
			Ward: "Phường Bến Nghé", District: "Quận 1", City: "Hồ Chí Minh",
		}},
		Capacity:    2,
		Size:        25,
		CreatedAt:   &created,
		IsAvailable: true,
		Amenities:   []string{"wifi", "rooftop_garden"},
		UtilityRates: models.UtilityRates{
			{Key: "water", Value: &models.UtilityRate{Type: "per-unit", Rate: 20000}},
			{Key: "electricity", Value: &models.UtilityRate{Type: "per-unit", Rate: 0}},
			{Key: "internet", Value: &models.UtilityRate{Type: "fixed", Rate: 100000}},
			{Key: "parking", Value: &models.UtilityRate{Type: "fixed", Rate: 150000}},
			{Key: "cleaning", Value: nil},
		},
	}
}

func TestBuildRoomDetail(t *testing.T) {
	d := BuildRoomDetail(sampleRoom(), time.Now())

	require.Equal(t, "Phòng trọ gần chợ Bến Thành", d.Title)
	require.Equal(t, "Phòng studio", d.RoomType)
	require.Equal(t, "3.500.000\u00a0₫ / tháng", d.Price)
	require.Equal(t, "Phường Bến Nghé, Quận 1, Hồ Chí Minh", d.Address)
	require.Equal(t, services.DescriptionPending, d.Description)
	require.Equal(t, []string{services.DefaultRoomImage}, d.Images)
	require.Equal(t, []string{"Wifi miễn phí", "rooftop garden"}, d.Amenities)

	require.Len(t, d.Features, 7)
	values := map[string]string{}
	for i, row := range d.Features {
		values[row.Label] = row.Value
		require.Equal(t, i%2 == 1, row.Shaded)
	}
	require.Equal(t, "#345678", values["Mã tin"])
	require.Equal(t, "Cho thuê phòng trọ", values["Loại tin rao"])
	require.Equal(t, "2 người", values["Đối tượng"])
	require.Equal(t, "25 m²", values["Diện tích"])
	require.Equal(t, "1/5/2024", values["Ngày đăng"])
	status := d.Features[6].Status
	require.NotNil(t, status)
	require.True(t, status.Available)
	require.Equal(t, "Còn trống", status.Label)
}

func TestBuildRoomDetail_UtilityRatesSkipEmptyAndKeepSourceShading(t *testing.T) {
	d := BuildRoomDetail(sampleRoom(), time.Now())

	require.Len(t, d.UtilityRates, 3)
	require.Equal(t, "Tiền nước", d.UtilityRates[0].Label)
	require.Equal(t, "20.000\u00a0₫ / đơn vị", d.UtilityRates[0].Value)
	require.False(t, d.UtilityRates[0].Shaded)

	require.Equal(t, "Internet", d.UtilityRates[1].Label)
	require.Equal(t, "100.000\u00a0₫ / tháng", d.UtilityRates[1].Value)
	require.False(t, d.UtilityRates[1].Shaded)

	require.Equal(t, "parking", d.UtilityRates[2].Label)
	require.True(t, d.UtilityRates[2].Shaded)
}

func TestBuildRoomDetail_UtilityRatesDeclaredButAllZero(t *testing.T) {
	room := &models.Room{UtilityRates: models.UtilityRates{
		{Key: "water", Value: &models.UtilityRate{Type: "fixed", Rate: 0}},
	}}

	d := BuildRoomDetail(room, time.Now())
	require.True(t, d.HasUtilityRates)
	require.Empty(t, d.UtilityRates)
}

func TestBuildRoomDetail_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)
	d := BuildRoomDetail(&models.Room{Type: "double"}, now)

	require.Equal(t, "Phòng đôi", d.Title)
	require.Empty(t, d.Price)
	require.Equal(t, services.AddressPending, d.Address)
	require.Empty(t, d.Amenities)
	require.Empty(t, d.UtilityRates)
	require.False(t, d.HasUtilityRates)
	require.Equal(t, "#000000", d.Features[0].Value)
	require.Equal(t, "1 người", d.Features[3].Value)
	require.Equal(t, "0 m²", d.Features[4].Value)
	require.Equal(t, "8/3/2025", d.Features[5].Value)
	require.Equal(t, "Đã thuê", d.Features[6].Status.Label)
}

func TestBuildNewestPosts(t *testing.T) {
	posts := BuildNewestPosts([]models.Room{
		{ID: "a", Name: "Phòng A", Price: 2000000, FullAddress: "Quận 7", Images: []string{"a.jpg"}},
		{Name: "không có id"},
		{ID: "b", Type: "single"},
	})

	require.Len(t, posts, 2)
	require.Equal(t, "Phòng A", posts[0].Title)
	require.Equal(t, "2.000.000\u00a0₫/tháng", posts[0].Price)
	require.Equal(t, "a.jpg", posts[0].Image)
	require.Equal(t, "Phòng đơn", posts[1].Title)
	require.Equal(t, services.DefaultRoomImage, posts[1].Image)
}
