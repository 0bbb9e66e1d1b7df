package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubItemValidate(t *testing.T) {
	cases := []struct {
		name    string
		item    HubItem
		wantErr bool
	}{
		{
			name: "valid note",
			item: HubItem{ItemType: HubItemNote, Title: "Paint booth SOP", Content: HubContent{Text: "steps..."}},
		},
		{
			name: "valid link with note",
			item: HubItem{ItemType: HubItemLink, Title: "Vendor portal", Content: HubContent{URL: "https://example.com", Note: "login in vault"}},
		},
		{
			name:    "note carrying url",
			item:    HubItem{ItemType: HubItemNote, Title: "x", Content: HubContent{Text: "t", URL: "https://example.com"}},
			wantErr: true,
		},
		{
			name:    "link without url",
			item:    HubItem{ItemType: HubItemLink, Title: "x", Content: HubContent{Note: "n"}},
			wantErr: true,
		},
		{
			name:    "link with text payload",
			item:    HubItem{ItemType: HubItemLink, Title: "x", Content: HubContent{URL: "https://example.com", Text: "t"}},
			wantErr: true,
		},
		{
			name:    "missing title",
			item:    HubItem{ItemType: HubItemNote, Title: "  ", Content: HubContent{Text: "t"}},
			wantErr: true,
		},
		{
			name:    "unknown type",
			item:    HubItem{ItemType: "BANNER", Title: "x"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHubContentScanRoundTrip(t *testing.T) {
	in := HubContent{URL: "https://example.com", Note: "supplier"}
	value, err := in.Value()
	require.NoError(t, err)

	var out HubContent
	require.NoError(t, out.Scan(value))
	assert.Equal(t, in, out)

	var fromString HubContent
	require.NoError(t, fromString.Scan(`{"text":"hello"}`))
	assert.Equal(t, HubContent{Text: "hello"}, fromString)

	var fromNil HubContent
	require.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, HubContent{}, fromNil)
}

func TestStoreRoleCanManageCatalog(t *testing.T) {
	assert.False(t, StoreRoleStaff.CanManageCatalog())
	assert.True(t, StoreRoleAdmin.CanManageCatalog())
	assert.True(t, StoreRoleSuperAdmin.CanManageCatalog())
}

func TestUserRoleInStore(t *testing.T) {
	u := User{Memberships: []StoreUser{
		{StoreID: "store-1", Role: StoreRoleStaff},
		{StoreID: "store-2", Role: StoreRoleAdmin},
	}}

	role, ok := u.RoleInStore("store-2")
	assert.True(t, ok)
	assert.Equal(t, StoreRoleAdmin, role)

	_, ok = u.RoleInStore("store-9")
	assert.False(t, ok)
}

func TestUserTokenLifecycle(t *testing.T) {
	u := User{}
	assert.False(t, u.IsTokenValid())

	require.NoError(t, u.GenerateToken())
	assert.Len(t, u.Token, 64)
	assert.True(t, u.IsTokenValid())

	u.ClearToken()
	assert.False(t, u.IsTokenValid())
	assert.Empty(t, u.Token)
	assert.Nil(t, u.TokenExp)
}
