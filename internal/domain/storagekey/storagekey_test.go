package storagekey

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Print Hub", want: "Print_Hub"},
		{in: "A&B-Copies.co", want: "A_B_Copies_co"},
		{in: "plain", want: "plain"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SafeSegment(tt.in))
		})
	}
}

func TestFolders(t *testing.T) {
	t.Parallel()

	shopID := uuid.MustParse("0190c1a4-0000-7000-8000-000000000001")
	orderID := uuid.MustParse("0190c1a4-0000-7000-8000-000000000002")

	assert.Equal(t, "Print_Hub_"+shopID.String(), ShopFolder("Print Hub", shopID))
	assert.Equal(t, "Jane_Doe_"+orderID.String(), OrderFolder("Jane Doe", orderID))
	assert.Equal(t, "Guest_"+orderID.String(), OrderFolder("", orderID))
}

func TestTempKey(t *testing.T) {
	t.Parallel()

	unscoped := TempKey("", "pdf")
	assert.True(t, strings.HasPrefix(unscoped, "temp/"))
	assert.True(t, strings.HasSuffix(unscoped, ".pdf"))
	assert.Equal(t, ClassTemp, Classify(unscoped))

	scoped := TempKey("shop-1", "docx")
	assert.True(t, strings.HasPrefix(scoped, "shop-1/temp/"))
	assert.Equal(t, ClassTemp, Classify(scoped))

	assert.NotEqual(t, TempKey("", "pdf"), TempKey("", "pdf"))
}

func TestCommittedAndConvertedKeys(t *testing.T) {
	t.Parallel()

	committed := CommittedKey("Shop_1", "Jane_2", "report.final.docx")
	assert.Equal(t, "Shop_1/Jane_2/report.final.docx", committed)
	assert.Equal(t, "Shop_1/Jane_2/converted/report.final.pdf", ConvertedKey(committed))
	assert.Equal(t, ClassOrder, Classify(committed))
	assert.Equal(t, ClassOrder, Classify(ConvertedKey(committed)))

	// path components in the original name never escape the order folder
	assert.Equal(t, "Shop_1/Jane_2/passwd", CommittedKey("Shop_1", "Jane_2", "../../etc/passwd"))
}

func TestProfileKey(t *testing.T) {
	t.Parallel()

	key := ProfileKey("Shop_1", "shop-1/temp/abc.png")
	assert.Equal(t, "Shop_1/profile-abc.png", key)
	assert.Equal(t, ClassProfile, Classify(key))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want Class
	}{
		{key: "stray.txt", want: ClassIgnored},
		{key: "temp/a.pdf", want: ClassTemp},
		{key: "shop/temp/a.pdf", want: ClassTemp},
		{key: "Shop_1/profile-logo.png", want: ClassProfile},
		{key: "Shop_1/Jane_2/doc.pdf", want: ClassOrder},
		{key: "Shop_1/Jane_2/converted/doc.pdf", want: ClassOrder},
		{key: "Shop_1/logo.png", want: ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.key)
			require.Equal(t, tt.want, got, got.String())
			assert.Equal(t, tt.want == ClassTemp || tt.want == ClassOrder, got.Expirable())
		})
	}
}

func TestWithinShop(t *testing.T) {
	t.Parallel()

	shopID := uuid.New()
	folder := ShopFolder("Print Hub", shopID)

	assert.True(t, WithinShop("temp/a.pdf", shopID, folder))
	assert.True(t, WithinShop(shopID.String()+"/temp/a.pdf", shopID, folder))
	assert.True(t, WithinShop(folder+"/Jane_1/a.pdf", shopID, folder))
	assert.False(t, WithinShop("Other_1/Jane_1/a.pdf", shopID, folder))
	assert.False(t, WithinShop("a.pdf", shopID, folder))
}

func TestExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pdf", Extension("Report.PDF"))
	assert.Equal(t, "docx", Extension("a/b/c.docx"))
	assert.Equal(t, "", Extension("README"))
}
