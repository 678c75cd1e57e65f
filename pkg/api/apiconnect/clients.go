package apiconnect

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/docshelf/pkg/api"
)

// DocumentServiceClient calls the document service.
type DocumentServiceClient struct {
	create *connect.Client[api.CreateDocumentRequest, api.CreateDocumentResponse]
	get    *connect.Client[api.GetDocumentRequest, api.GetDocumentResponse]
	list   *connect.Client[api.ListDocumentsRequest, api.ListDocumentsResponse]
	update *connect.Client[api.UpdateDocumentRequest, api.UpdateDocumentResponse]
	delete *connect.Client[api.DeleteDocumentRequest, api.DeleteDocumentResponse]
}

// NewDocumentServiceClient creates a client for the service at baseURL.
func NewDocumentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *DocumentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	o := clientOptions(opts)
	return &DocumentServiceClient{
		create: connect.NewClient[api.CreateDocumentRequest, api.CreateDocumentResponse](httpClient, baseURL+DocumentServiceCreateDocumentProcedure, o...),
		get:    connect.NewClient[api.GetDocumentRequest, api.GetDocumentResponse](httpClient, baseURL+DocumentServiceGetDocumentProcedure, o...),
		list:   connect.NewClient[api.ListDocumentsRequest, api.ListDocumentsResponse](httpClient, baseURL+DocumentServiceListDocumentsProcedure, o...),
		update: connect.NewClient[api.UpdateDocumentRequest, api.UpdateDocumentResponse](httpClient, baseURL+DocumentServiceUpdateDocumentProcedure, o...),
		delete: connect.NewClient[api.DeleteDocumentRequest, api.DeleteDocumentResponse](httpClient, baseURL+DocumentServiceDeleteDocumentProcedure, o...),
	}
}

func (c *DocumentServiceClient) CreateDocument(ctx context.Context, req *connect.Request[api.CreateDocumentRequest]) (*connect.Response[api.CreateDocumentResponse], error) {
	return c.create.CallUnary(ctx, req)
}

func (c *DocumentServiceClient) GetDocument(ctx context.Context, req *connect.Request[api.GetDocumentRequest]) (*connect.Response[api.GetDocumentResponse], error) {
	return c.get.CallUnary(ctx, req)
}

func (c *DocumentServiceClient) ListDocuments(ctx context.Context, req *connect.Request[api.ListDocumentsRequest]) (*connect.Response[api.ListDocumentsResponse], error) {
	return c.list.CallUnary(ctx, req)
}

func (c *DocumentServiceClient) UpdateDocument(ctx context.Context, req *connect.Request[api.UpdateDocumentRequest]) (*connect.Response[api.UpdateDocumentResponse], error) {
	return c.update.CallUnary(ctx, req)
}

func (c *DocumentServiceClient) DeleteDocument(ctx context.Context, req *connect.Request[api.DeleteDocumentRequest]) (*connect.Response[api.DeleteDocumentResponse], error) {
	return c.delete.CallUnary(ctx, req)
}

// FamilyServiceClient calls the family member service.
type FamilyServiceClient struct {
	add    *connect.Client[api.AddFamilyMemberRequest, api.AddFamilyMemberResponse]
	list   *connect.Client[api.ListFamilyMembersRequest, api.ListFamilyMembersResponse]
	delete *connect.Client[api.DeleteFamilyMemberRequest, api.DeleteFamilyMemberResponse]
}

// NewFamilyServiceClient creates a client for the service at baseURL.
func NewFamilyServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *FamilyServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	o := clientOptions(opts)
	return &FamilyServiceClient{
		add:    connect.NewClient[api.AddFamilyMemberRequest, api.AddFamilyMemberResponse](httpClient, baseURL+FamilyServiceAddFamilyMemberProcedure, o...),
		list:   connect.NewClient[api.ListFamilyMembersRequest, api.ListFamilyMembersResponse](httpClient, baseURL+FamilyServiceListFamilyMembersProcedure, o...),
		delete: connect.NewClient[api.DeleteFamilyMemberRequest, api.DeleteFamilyMemberResponse](httpClient, baseURL+FamilyServiceDeleteFamilyMemberProcedure, o...),
	}
}

func (c *FamilyServiceClient) AddFamilyMember(ctx context.Context, req *connect.Request[api.AddFamilyMemberRequest]) (*connect.Response[api.AddFamilyMemberResponse], error) {
	return c.add.CallUnary(ctx, req)
}

func (c *FamilyServiceClient) ListFamilyMembers(ctx context.Context, req *connect.Request[api.ListFamilyMembersRequest]) (*connect.Response[api.ListFamilyMembersResponse], error) {
	return c.list.CallUnary(ctx, req)
}

func (c *FamilyServiceClient) DeleteFamilyMember(ctx context.Context, req *connect.Request[api.DeleteFamilyMemberRequest]) (*connect.Response[api.DeleteFamilyMemberResponse], error) {
	return c.delete.CallUnary(ctx, req)
}

// SettingsServiceClient calls the settings service.
type SettingsServiceClient struct {
	get        *connect.Client[api.GetSettingsRequest, api.GetSettingsResponse]
	update     *connect.Client[api.UpdateSettingsRequest, api.UpdateSettingsResponse]
	currencies *connect.Client[api.ListCurrenciesRequest, api.ListCurrenciesResponse]
}

// NewSettingsServiceClient creates a client for the service at baseURL.
func NewSettingsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SettingsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	o := clientOptions(opts)
	return &SettingsServiceClient{
		get:        connect.NewClient[api.GetSettingsRequest, api.GetSettingsResponse](httpClient, baseURL+SettingsServiceGetSettingsProcedure, o...),
		update:     connect.NewClient[api.UpdateSettingsRequest, api.UpdateSettingsResponse](httpClient, baseURL+SettingsServiceUpdateSettingsProcedure, o...),
		currencies: connect.NewClient[api.ListCurrenciesRequest, api.ListCurrenciesResponse](httpClient, baseURL+SettingsServiceListCurrenciesProcedure, o...),
	}
}

func (c *SettingsServiceClient) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	return c.get.CallUnary(ctx, req)
}

func (c *SettingsServiceClient) UpdateSettings(ctx context.Context, req *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error) {
	return c.update.CallUnary(ctx, req)
}

func (c *SettingsServiceClient) ListCurrencies(ctx context.Context, req *connect.Request[api.ListCurrenciesRequest]) (*connect.Response[api.ListCurrenciesResponse], error) {
	return c.currencies.CallUnary(ctx, req)
}

// CalendarServiceClient calls the calendar service.
type CalendarServiceClient struct {
	list     *connect.Client[api.ListEventsRequest, api.ListEventsResponse]
	upcoming *connect.Client[api.UpcomingEventsRequest, api.UpcomingEventsResponse]
}

// NewCalendarServiceClient creates a client for the service at baseURL.
func NewCalendarServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *CalendarServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	o := clientOptions(opts)
	return &CalendarServiceClient{
		list:     connect.NewClient[api.ListEventsRequest, api.ListEventsResponse](httpClient, baseURL+CalendarServiceListEventsProcedure, o...),
		upcoming: connect.NewClient[api.UpcomingEventsRequest, api.UpcomingEventsResponse](httpClient, baseURL+CalendarServiceUpcomingEventsProcedure, o...),
	}
}

func (c *CalendarServiceClient) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	return c.list.CallUnary(ctx, req)
}

func (c *CalendarServiceClient) UpcomingEvents(ctx context.Context, req *connect.Request[api.UpcomingEventsRequest]) (*connect.Response[api.UpcomingEventsResponse], error) {
	return c.upcoming.CallUnary(ctx, req)
}
