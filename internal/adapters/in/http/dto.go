package http

import (
	"time"

	"fasttrack/internal/core/application/usecases/queries"
	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/courier"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/core/domain/model/pickup"
)

// ErrorResponse is the JSON body for every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type registerRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	BusinessName string    `json:"business_name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func newUserResponse(u *account.User) userResponse {
	return userResponse{
		ID:           u.ID().String(),
		Email:        u.Email(),
		FullName:     u.FullName(),
		Role:         u.Role().String(),
		Status:       u.Status().String(),
		BusinessName: u.BusinessName(),
		Phone:        u.Phone(),
		Address:      u.Address(),
		CreatedAt:    u.CreatedAt(),
	}
}

type createParcelRequest struct {
	RecipientName      string  `json:"recipient_name"`
	RecipientPhone     string  `json:"recipient_phone"`
	DeliveryAddress    string  `json:"delivery_address"`
	PackageDescription string  `json:"package_description"`
	WeightKg           float64 `json:"weight_kg"`
	Dimensions         string  `json:"dimensions"`
}

type parcelResponse struct {
	ID                 string    `json:"id"`
	TrackingID         string    `json:"tracking_id"`
	SenderID           string    `json:"sender_id"`
	RecipientName      string    `json:"recipient_name"`
	RecipientPhone     string    `json:"recipient_phone"`
	DeliveryAddress    string    `json:"delivery_address"`
	PackageDescription string    `json:"package_description,omitempty"`
	WeightKg           float64   `json:"weight_kg,omitempty"`
	Dimensions         string    `json:"dimensions,omitempty"`
	Status             string    `json:"status"`
	StatusNotes        string    `json:"status_notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func newParcelResponse(p *parcel.Parcel) parcelResponse {
	return parcelResponse{
		ID:                 p.ID().String(),
		TrackingID:         p.TrackingID().String(),
		SenderID:           p.SenderID().String(),
		RecipientName:      p.Recipient().Name(),
		RecipientPhone:     p.Recipient().Phone(),
		DeliveryAddress:    p.Recipient().Address(),
		PackageDescription: p.PackageInfo().Description(),
		WeightKg:           p.PackageInfo().WeightKg(),
		Dimensions:         p.PackageInfo().Dimensions(),
		Status:             p.Status().String(),
		StatusNotes:        p.StatusNotes(),
		CreatedAt:          p.CreatedAt(),
		UpdatedAt:          p.UpdatedAt(),
	}
}

func newParcelResponseFromRow(row queries.ListParcelsQueryResponse) parcelResponse {
	return parcelResponse{
		ID:                 row.ID.String(),
		TrackingID:         row.TrackingID,
		SenderID:           row.SenderID.String(),
		RecipientName:      row.RecipientName,
		RecipientPhone:     row.RecipientPhone,
		DeliveryAddress:    row.DeliveryAddress,
		PackageDescription: row.PackageDescription,
		WeightKg:           row.WeightKg,
		Dimensions:         row.Dimensions,
		Status:             row.Status,
		StatusNotes:        row.StatusNotes,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

type updateParcelRequest struct {
	RecipientName      string  `json:"recipient_name"`
	RecipientPhone     string  `json:"recipient_phone"`
	DeliveryAddress    string  `json:"delivery_address"`
	PackageDescription string  `json:"package_description"`
	WeightKg           float64 `json:"weight_kg"`
	Dimensions         string  `json:"dimensions"`
}

type updateParcelStatusRequest struct {
	Status   string `json:"status"`
	Notes    string `json:"notes"`
	Location string `json:"location"`
}

type trackParcelResponse struct {
	TrackingID    string    `json:"tracking_id"`
	Status        string    `json:"status"`
	RecipientName string    `json:"recipient_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type trackingUpdateResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type createPickupRequestRequest struct {
	PickupAddress       string   `json:"pickup_address"`
	PickupDate          string   `json:"pickup_date"`
	TimeSlot            string   `json:"time_slot"`
	SpecialInstructions string   `json:"special_instructions"`
	ParcelIDs           []string `json:"parcel_ids"`
}

type pickupRequestResponse struct {
	ID                  string    `json:"id"`
	MerchantID          string    `json:"merchant_id"`
	PickupAddress       string    `json:"pickup_address"`
	PickupDate          time.Time `json:"pickup_date"`
	TimeSlot            string    `json:"time_slot,omitempty"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	Status              string    `json:"status"`
	CourierID           *string   `json:"courier_id,omitempty"`
	AdminNotes          string    `json:"admin_notes,omitempty"`
	PackageCount        int       `json:"package_count"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func newPickupRequestResponse(r *pickup.Request) pickupRequestResponse {
	var courierID *string
	if id := r.CourierID(); id != nil {
		s := id.String()
		courierID = &s
	}

	return pickupRequestResponse{
		ID:                  r.ID().String(),
		MerchantID:          r.MerchantID().String(),
		PickupAddress:       r.PickupAddress(),
		PickupDate:          r.PickupDate(),
		TimeSlot:            r.TimeSlot(),
		SpecialInstructions: r.SpecialInstructions(),
		Status:              r.Status().String(),
		CourierID:           courierID,
		AdminNotes:          r.AdminNotes(),
		PackageCount:        r.PackageCount(),
		CreatedAt:           r.CreatedAt(),
		UpdatedAt:           r.UpdatedAt(),
	}
}

func newPickupRequestResponseFromRow(row queries.ListPickupRequestsQueryResponse) pickupRequestResponse {
	var courierID *string
	if row.CourierID != nil {
		s := row.CourierID.String()
		courierID = &s
	}

	return pickupRequestResponse{
		ID:                  row.ID.String(),
		MerchantID:          row.MerchantID.String(),
		PickupAddress:       row.PickupAddress,
		PickupDate:          row.PickupDate,
		TimeSlot:            row.TimeSlot,
		SpecialInstructions: row.SpecialInstructions,
		Status:              row.Status,
		CourierID:           courierID,
		AdminNotes:          row.AdminNotes,
		PackageCount:        row.PackageCount,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}

type addPickupParcelRequest struct {
	ParcelID string `json:"parcel_id"`
}

type approvePickupRequestRequest struct {
	Status    string `json:"status"`
	CourierID string `json:"courier_id"`
}

type rejectPickupRequestRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// decidePickupRequestRequest is the generic decision body: status picks the
// workflow action, courier_id and admin_notes feed approve and reject.
type decidePickupRequestRequest struct {
	Status     string `json:"status"`
	CourierID  string `json:"courier_id"`
	AdminNotes string `json:"admin_notes"`
}

type createCourierRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number"`
	CoverageArea  string `json:"coverage_area"`
}

type courierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	VehicleType   string    `json:"vehicle_type,omitempty"`
	VehicleNumber string    `json:"vehicle_number,omitempty"`
	CoverageArea  string    `json:"coverage_area,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func newCourierResponse(c *courier.Courier) courierResponse {
	return courierResponse{
		ID:            c.ID().String(),
		Name:          c.Name(),
		Phone:         c.Phone(),
		VehicleType:   c.Vehicle().Type(),
		VehicleNumber: c.Vehicle().Number(),
		CoverageArea:  c.Vehicle().CoverageArea(),
		Status:        c.Status().String(),
		CreatedAt:     c.CreatedAt(),
	}
}

func newCourierResponseFromRow(row queries.ListCouriersQueryResponse) courierResponse {
	return courierResponse{
		ID:            row.ID.String(),
		Name:          row.Name,
		Phone:         row.Phone,
		VehicleType:   row.VehicleType,
		VehicleNumber: row.VehicleNumber,
		CoverageArea:  row.CoverageArea,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt,
	}
}

type platformStatsResponse struct {
	TotalParcels          int            `json:"total_parcels"`
	ParcelsByStatus       map[string]int `json:"parcels_by_status"`
	TotalMerchants        int            `json:"total_merchants"`
	ActiveCouriers        int            `json:"active_couriers"`
	PendingPickupRequests int            `json:"pending_pickup_requests"`
}

type merchantStatsResponse struct {
	TotalParcels       int            `json:"total_parcels"`
	ParcelsByStatus    map[string]int `json:"parcels_by_status"`
	OpenPickupRequests int            `json:"open_pickup_requests"`
}
