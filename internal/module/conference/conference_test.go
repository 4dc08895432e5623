package conference

import (
	"os"
	"testing"

	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/model"
	"lab-website-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	(&ModuleConference{}).Init()
	os.Exit(m.Run())
}

func TestListConferencesSorted(t *testing.T) {
	test.SetupDB(t)
	for _, cf := range []model.Conference{
		{Title: "icml", Author: "x", Conference: "ICML", Year: 2024, Month: "July"},
		{Title: "neurips", Author: "x", Conference: "NeurIPS", Year: 2024, Month: "December"},
		{Title: "cvpr", Author: "x", Conference: "CVPR", Year: 2023, Month: "June"},
	} {
		require.NoError(t, database.DB.Create(&cf).Error)
	}

	resp := test.DoGet(t, ListConferences, "")
	test.NoError(t, resp)

	var data struct {
		Conferences  []model.Conference `json:"conferences"`
		Years        []int              `json:"years"`
		SelectedYear string             `json:"selected_year"`
		Total        int                `json:"total"`
	}
	test.DecodeData(t, resp, &data)

	require.Equal(t, []int{2024, 2023}, data.Years)
	require.Equal(t, 3, data.Total)
	require.Equal(t, "neurips", data.Conferences[0].Title)
	require.Equal(t, "icml", data.Conferences[1].Title)
	require.Equal(t, "cvpr", data.Conferences[2].Title)
}

func TestCreateAndDeleteConference(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, CreateConference, CreateConferenceReq{
		Title:      "A Study",
		Author:     "Kim",
		Conference: "ICASSP",
		Month:      "April",
		Year:       2025,
	})
	test.NoError(t, resp)

	var cf model.Conference
	require.NoError(t, database.DB.First(&cf).Error)
	require.Equal(t, "ICASSP", cf.Conference)

	test.NoError(t, test.DoGet(t, DeleteConference, "", gin.Param{Key: "id", Value: "1"}))

	var count int64
	require.NoError(t, database.DB.Model(&model.Conference{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestDeleteConferenceNotFound(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoGet(t, DeleteConference, "", gin.Param{Key: "id", Value: "9"})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}
