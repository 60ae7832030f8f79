package user_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/amirasaad/exchange/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UserTestSuite struct {
	testutils.E2ETestSuite
	testUser *dto.UserRead
	token    string
}

func (s *UserTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.testUser = s.CreateTestUser()
	s.token = s.LoginUser(s.testUser)
}

func (s *UserTestSuite) TestRequiresToken() {
	resp := s.MakeRequest(http.MethodGet, "/api/v1/users", "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp2 := s.MakeRequest(http.MethodGet, "/api/v1/users", "", "not.a.token")
	defer resp2.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusUnauthorized, resp2.StatusCode)
}

func (s *UserTestSuite) TestListUsers() {
	s.CreateTestUser()
	resp := s.MakeRequest(http.MethodGet, "/api/v1/users", "", s.token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var users []dto.UserRead
	s.DecodeResponse(resp, &users)
	s.Len(users, 2)
}

func (s *UserTestSuite) TestCreateUserVariants() {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "success",
			body:       `{"username":"newuser","email":"new@example.com","password":"password123"}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "invalid body",
			body:       `{"username":123}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "invalid email",
			body:       `{"username":"other","email":"nope","password":"password123"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "username taken",
			body:       fmt.Sprintf(`{"username":%q,"email":"dup@example.com","password":"password123"}`, s.testUser.Username),
			wantStatus: fiber.StatusConflict,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodPost, "/api/v1/users", tc.body, s.token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *UserTestSuite) TestCreateUser_ReturnsRecord() {
	resp := s.MakeRequest(http.MethodPost, "/api/v1/users",
		`{"username":"carol","email":"carol@example.com","password":"password123"}`, s.token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var created dto.UserRead
	s.DecodeResponse(resp, &created)
	s.Equal("carol", created.Username)
	s.Equal("/api/v1/users/"+created.ID.String(), resp.Header.Get("Location"))
	s.Empty(created.HashedPassword)
}

func (s *UserTestSuite) TestGetUserVariants() {
	testCases := []struct {
		userID     string
		desc       string
		wantStatus int
	}{
		{userID: uuid.NewString(), desc: "user not found", wantStatus: fiber.StatusNotFound},
		{userID: "not-a-uuid", desc: "invalid id", wantStatus: fiber.StatusBadRequest},
		{userID: s.testUser.ID.String(), desc: "get user success", wantStatus: fiber.StatusOK},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodGet, "/api/v1/users/"+tc.userID, "", s.token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *UserTestSuite) TestUpdateUserVariants() {
	id := s.testUser.ID.String()
	testCases := []struct {
		desc       string
		path       string
		body       string
		wantStatus int
	}{
		{
			desc:       "id mismatch",
			path:       id,
			body:       fmt.Sprintf(`{"id":%q,"email":"x@example.com"}`, uuid.NewString()),
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "invalid body",
			path:       id,
			body:       `{"id":123}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "not found",
			path:       "00000000-0000-0000-0000-000000000001",
			body:       `{"id":"00000000-0000-0000-0000-000000000001","email":"x@example.com"}`,
			wantStatus: fiber.StatusNotFound,
		},
		{
			desc:       "success",
			path:       id,
			body:       fmt.Sprintf(`{"id":%q,"email":"updated@example.com"}`, id),
			wantStatus: fiber.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodPut, "/api/v1/users/"+tc.path, tc.body, s.token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}

	u, err := s.App.UserService.Get(s.T().Context(), s.testUser.ID)
	s.Require().NoError(err)
	s.Equal("updated@example.com", u.Email)
}

func (s *UserTestSuite) TestUpdateUser_Password() {
	id := s.testUser.ID.String()
	body := fmt.Sprintf(`{"id":%q,"password":"n3w-password"}`, id)
	resp := s.MakeRequest(http.MethodPut, "/api/v1/users/"+id, body, s.token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusNoContent, resp.StatusCode)

	login := fmt.Sprintf(`{"username":%q,"password":"n3w-password"}`, s.testUser.Username)
	resp2 := s.MakeRequest(http.MethodPost, "/api/v1/authenticate", login, "")
	defer resp2.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp2.StatusCode)
}

func (s *UserTestSuite) TestDeleteUserVariants() {
	testCases := []struct {
		desc       string
		userID     string
		wantStatus int
	}{
		{desc: "success", userID: s.testUser.ID.String(), wantStatus: fiber.StatusNoContent},
		{desc: "already deleted", userID: s.testUser.ID.String(), wantStatus: fiber.StatusNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodDelete, "/api/v1/users/"+tc.userID, "", s.token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *UserTestSuite) TestGetUserConversions() {
	for _, amount := range []string{"10", "20"} {
		resp := s.MakeRequest(http.MethodGet, "/api/v1/exchange?from=BRL&to=EUR&amount="+amount, "", s.token)
		resp.Body.Close() //nolint:errcheck
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	}

	resp := s.MakeRequest(http.MethodGet, "/api/v1/users/"+s.testUser.ID.String()+"/conversions", "", s.token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var history []dto.ConversionRead
	s.DecodeResponse(resp, &history)
	s.Require().Len(history, 2)
	s.InDelta(10.0, history[0].OriginAmount, 1e-9)
	s.InDelta(20.0, history[1].OriginAmount, 1e-9)
	s.InDelta(history[1].OriginAmount*history[1].Rate, history[1].DestinationAmount, 1e-9)
	s.Equal(s.testUser.ID, history[0].UserID)

	missing := s.MakeRequest(http.MethodGet, "/api/v1/users/"+uuid.NewString()+"/conversions", "", s.token)
	defer missing.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, missing.StatusCode)
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}
