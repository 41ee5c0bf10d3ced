package agendav1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "agenda.v1.AgendaService"

// AgendaServiceServer — серверная часть сервиса агенды.
type AgendaServiceServer interface {
	CreateEvent(context.Context, *CreateEventRequest) (*Event, error)
	UpdateEvent(context.Context, *UpdateEventRequest) (*Event, error)
	DeleteEvent(context.Context, *DeleteRequest) (*DeleteResponse, error)
	ListEventsByDate(context.Context, *ListEventsByDateRequest) (*ListEventsResponse, error)
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error)
	ClearEvents(context.Context, *ClearEventsRequest) (*DeleteResponse, error)

	BlockDate(context.Context, *BlockDateRequest) (*BlockedDate, error)
	UnblockDate(context.Context, *UnblockDateRequest) (*DeleteResponse, error)
	ListBlockedDates(context.Context, *UserRequest) (*ListBlockedDatesResponse, error)
	AddBlockedPeriod(context.Context, *AddBlockedPeriodRequest) (*BlockedPeriod, error)
	DeleteBlockedPeriod(context.Context, *DeleteRequest) (*DeleteResponse, error)
	ListBlockedPeriods(context.Context, *UserRequest) (*ListBlockedPeriodsResponse, error)

	AddHoliday(context.Context, *AddHolidayRequest) (*Holiday, error)
	DeleteHoliday(context.Context, *DeleteRequest) (*DeleteResponse, error)
	ListHolidays(context.Context, *ListHolidaysRequest) (*ListHolidaysResponse, error)

	GetAgendaConfig(context.Context, *UserRequest) (*AgendaConfig, error)
	UpdateAgendaConfig(context.Context, *UpdateAgendaConfigRequest) (*AgendaConfig, error)
	ToggleAgendaRule(context.Context, *ToggleAgendaRuleRequest) (*AgendaConfig, error)

	GetMonth(context.Context, *GetMonthRequest) (*MonthView, error)
	CheckAvailability(context.Context, *CheckAvailabilityRequest) (*Availability, error)

	ImportEvents(context.Context, *ImportEventsRequest) (*ImportResult, error)
	ListImportHistory(context.Context, *ListImportHistoryRequest) (*ListImportHistoryResponse, error)
	RollbackImport(context.Context, *RollbackImportRequest) (*RollbackImportResponse, error)

	GetPlanLimits(context.Context, *UserRequest) (*PlanLimits, error)
	ExportFeed(context.Context, *UserRequest) (*ExportFeedResponse, error)

	mustEmbedUnimplementedAgendaServiceServer()
}

// UnimplementedAgendaServiceServer нужно встраивать в реализацию,
// чтобы новые методы не ломали сборку.
type UnimplementedAgendaServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedAgendaServiceServer) CreateEvent(context.Context, *CreateEventRequest) (*Event, error) {
	return nil, unimplemented("CreateEvent")
}
func (UnimplementedAgendaServiceServer) UpdateEvent(context.Context, *UpdateEventRequest) (*Event, error) {
	return nil, unimplemented("UpdateEvent")
}
func (UnimplementedAgendaServiceServer) DeleteEvent(context.Context, *DeleteRequest) (*DeleteResponse, error) {
	return nil, unimplemented("DeleteEvent")
}
func (UnimplementedAgendaServiceServer) ListEventsByDate(context.Context, *ListEventsByDateRequest) (*ListEventsResponse, error) {
	return nil, unimplemented("ListEventsByDate")
}
func (UnimplementedAgendaServiceServer) ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error) {
	return nil, unimplemented("ListEvents")
}
func (UnimplementedAgendaServiceServer) ClearEvents(context.Context, *ClearEventsRequest) (*DeleteResponse, error) {
	return nil, unimplemented("ClearEvents")
}
func (UnimplementedAgendaServiceServer) BlockDate(context.Context, *BlockDateRequest) (*BlockedDate, error) {
	return nil, unimplemented("BlockDate")
}
func (UnimplementedAgendaServiceServer) UnblockDate(context.Context, *UnblockDateRequest) (*DeleteResponse, error) {
	return nil, unimplemented("UnblockDate")
}
func (UnimplementedAgendaServiceServer) ListBlockedDates(context.Context, *UserRequest) (*ListBlockedDatesResponse, error) {
	return nil, unimplemented("ListBlockedDates")
}
func (UnimplementedAgendaServiceServer) AddBlockedPeriod(context.Context, *AddBlockedPeriodRequest) (*BlockedPeriod, error) {
	return nil, unimplemented("AddBlockedPeriod")
}
func (UnimplementedAgendaServiceServer) DeleteBlockedPeriod(context.Context, *DeleteRequest) (*DeleteResponse, error) {
	return nil, unimplemented("DeleteBlockedPeriod")
}
func (UnimplementedAgendaServiceServer) ListBlockedPeriods(context.Context, *UserRequest) (*ListBlockedPeriodsResponse, error) {
	return nil, unimplemented("ListBlockedPeriods")
}
func (UnimplementedAgendaServiceServer) AddHoliday(context.Context, *AddHolidayRequest) (*Holiday, error) {
	return nil, unimplemented("AddHoliday")
}
func (UnimplementedAgendaServiceServer) DeleteHoliday(context.Context, *DeleteRequest) (*DeleteResponse, error) {
	return nil, unimplemented("DeleteHoliday")
}
func (UnimplementedAgendaServiceServer) ListHolidays(context.Context, *ListHolidaysRequest) (*ListHolidaysResponse, error) {
	return nil, unimplemented("ListHolidays")
}
func (UnimplementedAgendaServiceServer) GetAgendaConfig(context.Context, *UserRequest) (*AgendaConfig, error) {
	return nil, unimplemented("GetAgendaConfig")
}
func (UnimplementedAgendaServiceServer) UpdateAgendaConfig(context.Context, *UpdateAgendaConfigRequest) (*AgendaConfig, error) {
	return nil, unimplemented("UpdateAgendaConfig")
}
func (UnimplementedAgendaServiceServer) ToggleAgendaRule(context.Context, *ToggleAgendaRuleRequest) (*AgendaConfig, error) {
	return nil, unimplemented("ToggleAgendaRule")
}
func (UnimplementedAgendaServiceServer) GetMonth(context.Context, *GetMonthRequest) (*MonthView, error) {
	return nil, unimplemented("GetMonth")
}
func (UnimplementedAgendaServiceServer) CheckAvailability(context.Context, *CheckAvailabilityRequest) (*Availability, error) {
	return nil, unimplemented("CheckAvailability")
}
func (UnimplementedAgendaServiceServer) ImportEvents(context.Context, *ImportEventsRequest) (*ImportResult, error) {
	return nil, unimplemented("ImportEvents")
}
func (UnimplementedAgendaServiceServer) ListImportHistory(context.Context, *ListImportHistoryRequest) (*ListImportHistoryResponse, error) {
	return nil, unimplemented("ListImportHistory")
}
func (UnimplementedAgendaServiceServer) RollbackImport(context.Context, *RollbackImportRequest) (*RollbackImportResponse, error) {
	return nil, unimplemented("RollbackImport")
}
func (UnimplementedAgendaServiceServer) GetPlanLimits(context.Context, *UserRequest) (*PlanLimits, error) {
	return nil, unimplemented("GetPlanLimits")
}
func (UnimplementedAgendaServiceServer) ExportFeed(context.Context, *UserRequest) (*ExportFeedResponse, error) {
	return nil, unimplemented("ExportFeed")
}
func (UnimplementedAgendaServiceServer) mustEmbedUnimplementedAgendaServiceServer() {}

func RegisterAgendaServiceServer(s grpc.ServiceRegistrar, srv AgendaServiceServer) {
	s.RegisterService(&AgendaService_ServiceDesc, srv)
}

// unary строит описание unary-метода из method expression интерфейса,
// например AgendaServiceServer.CreateEvent.
func unary[Req, Resp any](name string, call func(AgendaServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AgendaServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(AgendaServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var AgendaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AgendaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateEvent", AgendaServiceServer.CreateEvent),
		unary("UpdateEvent", AgendaServiceServer.UpdateEvent),
		unary("DeleteEvent", AgendaServiceServer.DeleteEvent),
		unary("ListEventsByDate", AgendaServiceServer.ListEventsByDate),
		unary("ListEvents", AgendaServiceServer.ListEvents),
		unary("ClearEvents", AgendaServiceServer.ClearEvents),
		unary("BlockDate", AgendaServiceServer.BlockDate),
		unary("UnblockDate", AgendaServiceServer.UnblockDate),
		unary("ListBlockedDates", AgendaServiceServer.ListBlockedDates),
		unary("AddBlockedPeriod", AgendaServiceServer.AddBlockedPeriod),
		unary("DeleteBlockedPeriod", AgendaServiceServer.DeleteBlockedPeriod),
		unary("ListBlockedPeriods", AgendaServiceServer.ListBlockedPeriods),
		unary("AddHoliday", AgendaServiceServer.AddHoliday),
		unary("DeleteHoliday", AgendaServiceServer.DeleteHoliday),
		unary("ListHolidays", AgendaServiceServer.ListHolidays),
		unary("GetAgendaConfig", AgendaServiceServer.GetAgendaConfig),
		unary("UpdateAgendaConfig", AgendaServiceServer.UpdateAgendaConfig),
		unary("ToggleAgendaRule", AgendaServiceServer.ToggleAgendaRule),
		unary("GetMonth", AgendaServiceServer.GetMonth),
		unary("CheckAvailability", AgendaServiceServer.CheckAvailability),
		unary("ImportEvents", AgendaServiceServer.ImportEvents),
		unary("ListImportHistory", AgendaServiceServer.ListImportHistory),
		unary("RollbackImport", AgendaServiceServer.RollbackImport),
		unary("GetPlanLimits", AgendaServiceServer.GetPlanLimits),
		unary("ExportFeed", AgendaServiceServer.ExportFeed),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "agenda/v1/agenda.json",
}

// AgendaServiceClient работает поверх grpc.ClientConn с JSON-кодеком.
type AgendaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAgendaServiceClient(cc grpc.ClientConnInterface) *AgendaServiceClient {
	return &AgendaServiceClient{cc: cc}
}

// Invoke вызывает метод сервиса по короткому имени, например "GetMonth".
func (c *AgendaServiceClient) Invoke(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *AgendaServiceClient) GetMonth(ctx context.Context, in *GetMonthRequest, opts ...grpc.CallOption) (*MonthView, error) {
	out := new(MonthView)
	if err := c.Invoke(ctx, "GetMonth", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AgendaServiceClient) CheckAvailability(ctx context.Context, in *CheckAvailabilityRequest, opts ...grpc.CallOption) (*Availability, error) {
	out := new(Availability)
	if err := c.Invoke(ctx, "CheckAvailability", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AgendaServiceClient) ImportEvents(ctx context.Context, in *ImportEventsRequest, opts ...grpc.CallOption) (*ImportResult, error) {
	out := new(ImportResult)
	if err := c.Invoke(ctx, "ImportEvents", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AgendaServiceClient) CreateEvent(ctx context.Context, in *CreateEventRequest, opts ...grpc.CallOption) (*Event, error) {
	out := new(Event)
	if err := c.Invoke(ctx, "CreateEvent", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
