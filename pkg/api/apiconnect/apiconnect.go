// Package apiconnect mounts the docshelf services on Connect handlers and
// provides matching clients.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/docshelf/pkg/api"
)

const (
	DocumentServiceName = "docshelf.v1.DocumentService"
	FamilyServiceName   = "docshelf.v1.FamilyService"
	SettingsServiceName = "docshelf.v1.SettingsService"
	CalendarServiceName = "docshelf.v1.CalendarService"
)

const (
	DocumentServiceCreateDocumentProcedure = "/" + DocumentServiceName + "/CreateDocument"
	DocumentServiceGetDocumentProcedure    = "/" + DocumentServiceName + "/GetDocument"
	DocumentServiceListDocumentsProcedure  = "/" + DocumentServiceName + "/ListDocuments"
	DocumentServiceUpdateDocumentProcedure = "/" + DocumentServiceName + "/UpdateDocument"
	DocumentServiceDeleteDocumentProcedure = "/" + DocumentServiceName + "/DeleteDocument"

	FamilyServiceAddFamilyMemberProcedure    = "/" + FamilyServiceName + "/AddFamilyMember"
	FamilyServiceListFamilyMembersProcedure  = "/" + FamilyServiceName + "/ListFamilyMembers"
	FamilyServiceDeleteFamilyMemberProcedure = "/" + FamilyServiceName + "/DeleteFamilyMember"

	SettingsServiceGetSettingsProcedure    = "/" + SettingsServiceName + "/GetSettings"
	SettingsServiceUpdateSettingsProcedure = "/" + SettingsServiceName + "/UpdateSettings"
	SettingsServiceListCurrenciesProcedure = "/" + SettingsServiceName + "/ListCurrencies"

	CalendarServiceListEventsProcedure     = "/" + CalendarServiceName + "/ListEvents"
	CalendarServiceUpcomingEventsProcedure = "/" + CalendarServiceName + "/UpcomingEvents"
)

// IsProcedure reports whether path belongs to one of the docshelf services.
func IsProcedure(path string) bool {
	return strings.HasPrefix(path, "/docshelf.v1.")
}

// DocumentServiceHandler is implemented by the document service.
type DocumentServiceHandler interface {
	CreateDocument(context.Context, *connect.Request[api.CreateDocumentRequest]) (*connect.Response[api.CreateDocumentResponse], error)
	GetDocument(context.Context, *connect.Request[api.GetDocumentRequest]) (*connect.Response[api.GetDocumentResponse], error)
	ListDocuments(context.Context, *connect.Request[api.ListDocumentsRequest]) (*connect.Response[api.ListDocumentsResponse], error)
	UpdateDocument(context.Context, *connect.Request[api.UpdateDocumentRequest]) (*connect.Response[api.UpdateDocumentResponse], error)
	DeleteDocument(context.Context, *connect.Request[api.DeleteDocumentRequest]) (*connect.Response[api.DeleteDocumentResponse], error)
}

// FamilyServiceHandler is implemented by the family member service.
type FamilyServiceHandler interface {
	AddFamilyMember(context.Context, *connect.Request[api.AddFamilyMemberRequest]) (*connect.Response[api.AddFamilyMemberResponse], error)
	ListFamilyMembers(context.Context, *connect.Request[api.ListFamilyMembersRequest]) (*connect.Response[api.ListFamilyMembersResponse], error)
	DeleteFamilyMember(context.Context, *connect.Request[api.DeleteFamilyMemberRequest]) (*connect.Response[api.DeleteFamilyMemberResponse], error)
}

// SettingsServiceHandler is implemented by the settings service.
type SettingsServiceHandler interface {
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error)
	UpdateSettings(context.Context, *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error)
	ListCurrencies(context.Context, *connect.Request[api.ListCurrenciesRequest]) (*connect.Response[api.ListCurrenciesResponse], error)
}

// CalendarServiceHandler is implemented by the calendar service.
type CalendarServiceHandler interface {
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
	UpcomingEvents(context.Context, *connect.Request[api.UpcomingEventsRequest]) (*connect.Response[api.UpcomingEventsResponse], error)
}

// handlerOptions puts the JSON codec first so callers can still add
// interceptors and other options.
func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
}

// route builds a service handler dispatching on the full procedure path.
func route(name string, handlers map[string]http.Handler) (string, http.Handler) {
	return "/" + name + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// NewDocumentServiceHandler returns the mount path and handler for svc.
func NewDocumentServiceHandler(svc DocumentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	o := handlerOptions(opts)
	return route(DocumentServiceName, map[string]http.Handler{
		DocumentServiceCreateDocumentProcedure: connect.NewUnaryHandler(DocumentServiceCreateDocumentProcedure, svc.CreateDocument, o...),
		DocumentServiceGetDocumentProcedure:    connect.NewUnaryHandler(DocumentServiceGetDocumentProcedure, svc.GetDocument, o...),
		DocumentServiceListDocumentsProcedure:  connect.NewUnaryHandler(DocumentServiceListDocumentsProcedure, svc.ListDocuments, o...),
		DocumentServiceUpdateDocumentProcedure: connect.NewUnaryHandler(DocumentServiceUpdateDocumentProcedure, svc.UpdateDocument, o...),
		DocumentServiceDeleteDocumentProcedure: connect.NewUnaryHandler(DocumentServiceDeleteDocumentProcedure, svc.DeleteDocument, o...),
	})
}

// NewFamilyServiceHandler returns the mount path and handler for svc.
func NewFamilyServiceHandler(svc FamilyServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	o := handlerOptions(opts)
	return route(FamilyServiceName, map[string]http.Handler{
		FamilyServiceAddFamilyMemberProcedure:    connect.NewUnaryHandler(FamilyServiceAddFamilyMemberProcedure, svc.AddFamilyMember, o...),
		FamilyServiceListFamilyMembersProcedure:  connect.NewUnaryHandler(FamilyServiceListFamilyMembersProcedure, svc.ListFamilyMembers, o...),
		FamilyServiceDeleteFamilyMemberProcedure: connect.NewUnaryHandler(FamilyServiceDeleteFamilyMemberProcedure, svc.DeleteFamilyMember, o...),
	})
}

// NewSettingsServiceHandler returns the mount path and handler for svc.
func NewSettingsServiceHandler(svc SettingsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	o := handlerOptions(opts)
	return route(SettingsServiceName, map[string]http.Handler{
		SettingsServiceGetSettingsProcedure:    connect.NewUnaryHandler(SettingsServiceGetSettingsProcedure, svc.GetSettings, o...),
		SettingsServiceUpdateSettingsProcedure: connect.NewUnaryHandler(SettingsServiceUpdateSettingsProcedure, svc.UpdateSettings, o...),
		SettingsServiceListCurrenciesProcedure: connect.NewUnaryHandler(SettingsServiceListCurrenciesProcedure, svc.ListCurrencies, o...),
	})
}

// NewCalendarServiceHandler returns the mount path and handler for svc.
func NewCalendarServiceHandler(svc CalendarServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	o := handlerOptions(opts)
	return route(CalendarServiceName, map[string]http.Handler{
		CalendarServiceListEventsProcedure:     connect.NewUnaryHandler(CalendarServiceListEventsProcedure, svc.ListEvents, o...),
		CalendarServiceUpcomingEventsProcedure: connect.NewUnaryHandler(CalendarServiceUpcomingEventsProcedure, svc.UpcomingEvents, o...),
	})
}
