package page

import (
	"os"
	"testing"

	"lab-website-system/internal/global/database"
	"lab-website-system/internal/model"
	"lab-website-system/internal/module/paper"
	"lab-website-system/test"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	(&ModulePage{}).Init()
	(&paper.ModulePaper{}).Init()
	os.Exit(m.Run())
}

func TestHomeLatestPapers(t *testing.T) {
	test.SetupDB(t)
	for year := 2010; year < 2022; year++ {
		p := model.Paper{Title: "p", Author: "x", Journal: "J", Year: year, Month: "May"}
		require.NoError(t, database.DB.Create(&p).Error)
	}

	resp := test.DoGet(t, Home, "")
	test.NoError(t, resp)

	var data struct {
		Page         string        `json:"page"`
		LatestPapers []model.Paper `json:"latest_papers"`
	}
	test.DecodeData(t, resp, &data)

	require.Equal(t, "home", data.Page)
	require.Len(t, data.LatestPapers, 10)
	require.Equal(t, 2021, data.LatestPapers[0].Year)
	require.Equal(t, 2012, data.LatestPapers[9].Year)
}

func TestCurrentMembers(t *testing.T) {
	resp := test.DoGet(t, CurrentMembers, "")
	test.NoError(t, resp)

	var data struct {
		Page    string   `json:"page"`
		Members []Member `json:"members"`
	}
	test.DecodeData(t, resp, &data)

	require.Equal(t, "current", data.Page)
	require.NotEmpty(t, data.Members)
	require.Equal(t, "Dong-Geun Lee", data.Members[0].Name)
}

func TestStaticPage(t *testing.T) {
	resp := test.DoGet(t, StaticPage("vision"), "")
	test.NoError(t, resp)

	var data struct {
		Page string `json:"page"`
	}
	test.DecodeData(t, resp, &data)
	require.Equal(t, "vision", data.Page)
}
