package jcm

// StackStatusChange selects the device status to transition to after a
// collection operation completes, optionally carried by a StackRequest.
type StackStatusChange uint8

const (
	StackStatusIdle     StackStatusChange = 0x0
	StackStatusInhibit  StackStatusChange = 0x1
	StackStatusReserved StackStatusChange = 0xFF
)

func StackStatusChangeFromU8(val uint8) StackStatusChange {
	switch StackStatusChange(val) {
	case StackStatusIdle, StackStatusInhibit:
		return StackStatusChange(val)
	default:
		return StackStatusReserved
	}
}

func CheckedStackStatusChangeFromU8(val uint8) (StackStatusChange, error) {
	s := StackStatusChangeFromU8(val)
	if s == StackStatusReserved {
		return s, &EnumError{Enum: "stack_status_change", Value: uint32(val)}
	}
	return s, nil
}

func (StackStatusChange) Len() int { return 1 }

func (s StackStatusChange) String() string {
	switch s {
	case StackStatusIdle:
		return "idle"
	case StackStatusInhibit:
		return "inhibit"
	default:
		return "reserved"
	}
}

// UidRequest gets or sets the device UID used on subsequent exchanges.
type UidRequest struct {
	Mode RequestMode
	Uid  uint8
}

func (r UidRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	if r.Mode == RequestModeSet {
		return buildRequestData(confId, uid, RequestTypeSetFeature, RequestUid, []byte{r.Uid})
	}
	return buildRequestData(confId, uid, RequestTypeStatus, RequestUid, nil)
}

func UidRequestFromMessageData(d MessageData) (UidRequest, error) {
	if d.MessageType == RequestTypeSetFeature {
		if err := expectRequest(d, RequestTypeSetFeature, RequestUid); err != nil {
			return UidRequest{}, err
		}
		if len(d.Additional) < 1 {
			return UidRequest{}, &LengthError{Field: "uid_request", Observed: len(d.Additional), Required: 1}
		}
		return UidRequest{Mode: RequestModeSet, Uid: d.Additional[0]}, nil
	}
	if err := expectRequest(d, RequestTypeStatus, RequestUid); err != nil {
		return UidRequest{}, err
	}
	return UidRequest{Mode: RequestModeGet}, nil
}

// StatusRequest asks for the device's current DeviceStatus and unit status
// table. It is always a Status-type getter; there is no Set variant.
type StatusRequest struct{}

func (StatusRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeStatus, RequestStatus, nil)
}

func StatusRequestFromMessageData(d MessageData) (StatusRequest, error) {
	return StatusRequest{}, expectRequest(d, RequestTypeStatus, RequestStatus)
}

// ResetRequest asks the device to reset. It is an Operation-type request.
type ResetRequest struct{}

func (ResetRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeOperation, RequestReset, nil)
}

func ResetRequestFromMessageData(d MessageData) (ResetRequest, error) {
	return ResetRequest{}, expectRequest(d, RequestTypeOperation, RequestReset)
}

// InhibitRequest enables or disables the device as a whole.
type InhibitRequest struct {
	Inhibited bool
}

func (r InhibitRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	payload := byte(0)
	if r.Inhibited {
		payload = 1
	}
	return buildRequestData(confId, uid, RequestTypeOperation, RequestInhibit, []byte{payload})
}

func InhibitRequestFromMessageData(d MessageData) (InhibitRequest, error) {
	if err := expectRequest(d, RequestTypeOperation, RequestInhibit); err != nil {
		return InhibitRequest{}, err
	}
	if len(d.Additional) < 1 {
		return InhibitRequest{}, &LengthError{Field: "inhibit_request", Observed: len(d.Additional), Required: 1}
	}
	return InhibitRequest{Inhibited: d.Additional[0] != 0}, nil
}

// IdleRequest tells the acceptor to accept an outstanding operation request
// and return to stand-by.
type IdleRequest struct{}

func (IdleRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeOperation, RequestIdle, nil)
}

func IdleRequestFromMessageData(d MessageData) (IdleRequest, error) {
	return IdleRequest{}, expectRequest(d, RequestTypeOperation, RequestIdle)
}

// StackRequest tells the device to stack the note currently held in escrow,
// optionally targeting a specific recycler box and/or requesting a status
// change once collection completes.
type StackRequest struct {
	StackBox     *UnitNumber
	StatusChange *StackStatusChange
}

func (r StackRequest) payload() []byte {
	switch {
	case r.StackBox != nil && r.StatusChange != nil:
		return []byte{uint8(*r.StackBox), uint8(*r.StatusChange)}
	case r.StackBox != nil:
		return []byte{uint8(*r.StackBox)}
	default:
		return nil
	}
}

func (r StackRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeOperation, RequestStack, r.payload())
}

func StackRequestFromMessageData(d MessageData) (StackRequest, error) {
	if err := expectRequest(d, RequestTypeOperation, RequestStack); err != nil {
		return StackRequest{}, err
	}
	switch len(d.Additional) {
	case 0:
		return StackRequest{}, nil
	case 1:
		un := UnitNumberFromU8(d.Additional[0])
		return StackRequest{StackBox: &un}, nil
	default:
		un := UnitNumberFromU8(d.Additional[0])
		sc, err := CheckedStackStatusChangeFromU8(d.Additional[1])
		if err != nil {
			return StackRequest{}, err
		}
		return StackRequest{StackBox: &un, StatusChange: &sc}, nil
	}
}

// RejectRequest tells the device to return the note currently held in
// escrow.
type RejectRequest struct{}

func (RejectRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeOperation, RequestReject, nil)
}

func RejectRequestFromMessageData(d MessageData) (RejectRequest, error) {
	return RejectRequest{}, expectRequest(d, RequestTypeOperation, RequestReject)
}

// HoldRequest extends the escrow timeout for the note currently held, in
// seconds, encoded big-endian (network byte order) unlike the rest of the
// protocol's little-endian multi-byte fields.
type HoldRequest struct {
	TimeoutSeconds uint16
}

func (r HoldRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	payload := []byte{uint8(r.TimeoutSeconds >> 8), uint8(r.TimeoutSeconds)}
	return buildRequestData(confId, uid, RequestTypeOperation, RequestHold, payload)
}

func HoldRequestFromMessageData(d MessageData) (HoldRequest, error) {
	if err := expectRequest(d, RequestTypeOperation, RequestHold); err != nil {
		return HoldRequest{}, err
	}
	if len(d.Additional) < 2 {
		return HoldRequest{}, &LengthError{Field: "hold_request", Observed: len(d.Additional), Required: 2}
	}
	return HoldRequest{TimeoutSeconds: uint16(d.Additional[0])<<8 | uint16(d.Additional[1])}, nil
}

// CollectMode selects which of the three collect request codes a
// CollectRequest encodes as.
type CollectMode uint8

const (
	CollectGeneric  CollectMode = 0
	CollectAcceptor CollectMode = 1
	CollectRecycler CollectMode = 2
)

// CollectRequest collects any note left in the transport path at power-up.
type CollectRequest struct {
	Mode CollectMode
}

func (r CollectRequest) requestCode() RequestCode {
	switch r.Mode {
	case CollectAcceptor:
		return RequestAcceptorCollect
	case CollectRecycler:
		return RequestRecyclerCollect
	default:
		return RequestCollect
	}
}

func (r CollectRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeOperation, r.requestCode(), nil)
}

func CollectRequestFromMessageData(d MessageData) (CollectRequest, error) {
	if d.MessageType != RequestTypeOperation || d.Code.IsEvent() {
		return CollectRequest{}, &MismatchError{
			ObservedType: d.MessageType, ExpectedType: RequestTypeOperation,
			ObservedCode: d.Code, ExpectedCode: NewRequestMessageCode(RequestCollect),
		}
	}
	switch d.Code.Request {
	case RequestCollect:
		return CollectRequest{Mode: CollectGeneric}, nil
	case RequestAcceptorCollect:
		return CollectRequest{Mode: CollectAcceptor}, nil
	case RequestRecyclerCollect:
		return CollectRequest{Mode: CollectRecycler}, nil
	default:
		return CollectRequest{}, &MismatchError{
			ObservedType: d.MessageType, ExpectedType: RequestTypeOperation,
			ObservedCode: d.Code, ExpectedCode: NewRequestMessageCode(RequestCollect),
		}
	}
}

// DenominationDisableRequest gets or sets which denomination indices are
// currently disabled from acceptance.
type DenominationDisableRequest struct {
	Mode RequestMode
	List DenominationDisableList
}

func (r DenominationDisableRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	msgType := r.Mode.messageType(RequestTypeSetFeature, RequestTypeStatus)
	var payload []byte
	if r.Mode == RequestModeSet {
		payload = r.List.Bytes()
	}
	return buildRequestData(confId, uid, msgType, RequestDenominationDisable, payload)
}

func DenominationDisableRequestFromMessageData(d MessageData) (DenominationDisableRequest, error) {
	if d.MessageType == RequestTypeSetFeature {
		if err := expectRequest(d, RequestTypeSetFeature, RequestDenominationDisable); err != nil {
			return DenominationDisableRequest{}, err
		}
		list, err := DenominationDisableListFromBytes(d.Additional)
		if err != nil {
			return DenominationDisableRequest{}, err
		}
		return DenominationDisableRequest{Mode: RequestModeSet, List: list}, nil
	}
	return DenominationDisableRequest{Mode: RequestModeGet}, expectRequest(d, RequestTypeStatus, RequestDenominationDisable)
}

// DirectionDisableRequest gets or sets which insertion orientations are
// inhibited.
type DirectionDisableRequest struct {
	Mode      RequestMode
	Direction InhibitDirection
}

func (r DirectionDisableRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	msgType := r.Mode.messageType(RequestTypeSetFeature, RequestTypeStatus)
	var payload []byte
	if r.Mode == RequestModeSet {
		payload = r.Direction.Bytes()
	}
	return buildRequestData(confId, uid, msgType, RequestDirectionDisable, payload)
}

func DirectionDisableRequestFromMessageData(d MessageData) (DirectionDisableRequest, error) {
	if d.MessageType == RequestTypeSetFeature {
		if err := expectRequest(d, RequestTypeSetFeature, RequestDirectionDisable); err != nil {
			return DirectionDisableRequest{}, err
		}
		if len(d.Additional) < 1 {
			return DirectionDisableRequest{}, &LengthError{Field: "direction_disable_request", Observed: len(d.Additional), Required: 1}
		}
		return DirectionDisableRequest{Mode: RequestModeSet, Direction: InhibitDirectionFromU8(d.Additional[0])}, nil
	}
	return DirectionDisableRequest{Mode: RequestModeGet}, expectRequest(d, RequestTypeStatus, RequestDirectionDisable)
}

// CurrencyAssignRequest retrieves the device's currency/denomination
// assignment table. It is a getter-only operation.
type CurrencyAssignRequest struct{}

func (CurrencyAssignRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeStatus, RequestCurrencyAssign, nil)
}

func CurrencyAssignRequestFromMessageData(d MessageData) (CurrencyAssignRequest, error) {
	return CurrencyAssignRequest{}, expectRequest(d, RequestTypeStatus, RequestCurrencyAssign)
}

// CashBoxSizeRequest retrieves the cash box capacity. Getter-only.
type CashBoxSizeRequest struct{}

func (CashBoxSizeRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeStatus, RequestCashBoxSize, nil)
}

func CashBoxSizeRequestFromMessageData(d MessageData) (CashBoxSizeRequest, error) {
	return CashBoxSizeRequest{}, expectRequest(d, RequestTypeStatus, RequestCashBoxSize)
}

// NearFullRequest gets or sets the near-full warning threshold.
type NearFullRequest struct {
	Mode RequestMode
	Data NearFullData
}

func (r NearFullRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	msgType := r.Mode.messageType(RequestTypeSetFeature, RequestTypeStatus)
	var payload []byte
	if r.Mode == RequestModeSet {
		payload = r.Data.Bytes()
	}
	return buildRequestData(confId, uid, msgType, RequestNearFull, payload)
}

func NearFullRequestFromMessageData(d MessageData) (NearFullRequest, error) {
	if d.MessageType == RequestTypeSetFeature {
		if err := expectRequest(d, RequestTypeSetFeature, RequestNearFull); err != nil {
			return NearFullRequest{}, err
		}
		data, err := NearFullDataFromBytes(d.Additional)
		if err != nil {
			return NearFullRequest{}, err
		}
		return NearFullRequest{Mode: RequestModeSet, Data: data}, nil
	}
	return NearFullRequest{Mode: RequestModeGet}, expectRequest(d, RequestTypeStatus, RequestNearFull)
}

// KeyRequest gets or sets the per-key enable/disable table.
type KeyRequest struct {
	Mode RequestMode
	List KeySettingList
}

func (r KeyRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	msgType := r.Mode.messageType(RequestTypeSetFeature, RequestTypeStatus)
	var payload []byte
	if r.Mode == RequestModeSet {
		payload = r.List.Bytes()
	}
	return buildRequestData(confId, uid, msgType, RequestKey, payload)
}

func KeyRequestFromMessageData(d MessageData) (KeyRequest, error) {
	if d.MessageType == RequestTypeSetFeature {
		if err := expectRequest(d, RequestTypeSetFeature, RequestKey); err != nil {
			return KeyRequest{}, err
		}
		list, err := KeySettingListFromBytes(d.Additional)
		if err != nil {
			return KeyRequest{}, err
		}
		return KeyRequest{Mode: RequestModeSet, List: list}, nil
	}
	return KeyRequest{Mode: RequestModeGet}, expectRequest(d, RequestTypeStatus, RequestKey)
}

// VersionRequest retrieves the device's FirmwareVersion string. Getter-only.
type VersionRequest struct{}

func (VersionRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeStatus, RequestVersion, nil)
}

func VersionRequestFromMessageData(d MessageData) (VersionRequest, error) {
	return VersionRequest{}, expectRequest(d, RequestTypeStatus, RequestVersion)
}

// ModelNameRequest retrieves the device's product name. Getter-only.
type ModelNameRequest struct{}

func (ModelNameRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeStatus, RequestModelName, nil)
}

func ModelNameRequestFromMessageData(d MessageData) (ModelNameRequest, error) {
	return ModelNameRequest{}, expectRequest(d, RequestTypeStatus, RequestModelName)
}

// ProgramSignatureRequest either asks which hash algorithm the device
// supports (Status mode, 1-byte AlgorithmNumber payload) or asks the device
// to verify firmware against an expected digest (Operation mode, algorithm
// selector followed by the digest).
type ProgramSignatureRequest struct {
	Mode RequestMode
	Hash HashAlgorithm
}

func (r ProgramSignatureRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	if r.Mode == RequestModeSet {
		return buildRequestData(confId, uid, RequestTypeOperation, RequestProgramSignature, r.Hash.Bytes())
	}
	return buildRequestData(confId, uid, RequestTypeStatus, RequestProgramSignature, []byte{uint8(r.Hash.AlgorithmNumber())})
}

func ProgramSignatureRequestFromMessageData(d MessageData) (ProgramSignatureRequest, error) {
	if d.MessageType == RequestTypeOperation {
		if err := expectRequest(d, RequestTypeOperation, RequestProgramSignature); err != nil {
			return ProgramSignatureRequest{}, err
		}
		hash, err := HashAlgorithmFromRequest(d.Additional)
		if err != nil {
			return ProgramSignatureRequest{}, err
		}
		return ProgramSignatureRequest{Mode: RequestModeSet, Hash: hash}, nil
	}
	if err := expectRequest(d, RequestTypeStatus, RequestProgramSignature); err != nil {
		return ProgramSignatureRequest{}, err
	}
	hash, err := HashAlgorithmFromRequest(d.Additional)
	if err != nil {
		return ProgramSignatureRequest{}, err
	}
	return ProgramSignatureRequest{Mode: RequestModeGet, Hash: hash}, nil
}

// SerialNumberRequest retrieves the device serial number. Getter-only.
type SerialNumberRequest struct{}

func (SerialNumberRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeStatus, RequestSerialNumber, nil)
}

func SerialNumberRequestFromMessageData(d MessageData) (SerialNumberRequest, error) {
	return SerialNumberRequest{}, expectRequest(d, RequestTypeStatus, RequestSerialNumber)
}

// NoteImageRequest fetches one block of a captured note image, or (with
// Block == ImageBlockQuery) the total size and block count.
type NoteImageRequest struct {
	Block ImageBlockNumber
}

func (r NoteImageRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildRequestData(confId, uid, RequestTypeStatus, RequestNoteDataInfo, []byte{uint8(r.Block)})
}

func NoteImageRequestFromMessageData(d MessageData) (NoteImageRequest, error) {
	if err := expectRequest(d, RequestTypeStatus, RequestNoteDataInfo); err != nil {
		return NoteImageRequest{}, err
	}
	if len(d.Additional) < 1 {
		return NoteImageRequest{}, &LengthError{Field: "note_image_request", Observed: len(d.Additional), Required: 1}
	}
	return NoteImageRequest{Block: ImageBlockNumber(d.Additional[0])}, nil
}

// EventResendIntervalRequest gets or sets how often an unacknowledged event
// is retransmitted by the device.
type EventResendIntervalRequest struct {
	Mode     RequestMode
	Interval EventResendInterval
}

func (r EventResendIntervalRequest) ToMessageData(confId ConfId, uid uint8) MessageData {
	msgType := r.Mode.messageType(RequestTypeSetFeature, RequestTypeStatus)
	var payload []byte
	if r.Mode == RequestModeSet {
		payload = []byte{uint8(r.Interval)}
	}
	return buildRequestData(confId, uid, msgType, RequestEventResendInterval, payload)
}

func EventResendIntervalRequestFromMessageData(d MessageData) (EventResendIntervalRequest, error) {
	if d.MessageType == RequestTypeSetFeature {
		if err := expectRequest(d, RequestTypeSetFeature, RequestEventResendInterval); err != nil {
			return EventResendIntervalRequest{}, err
		}
		if len(d.Additional) < 1 {
			return EventResendIntervalRequest{}, &LengthError{Field: "event_resend_interval_request", Observed: len(d.Additional), Required: 1}
		}
		interval, err := CheckedEventResendIntervalFromU8(d.Additional[0])
		if err != nil {
			return EventResendIntervalRequest{}, err
		}
		return EventResendIntervalRequest{Mode: RequestModeSet, Interval: interval}, nil
	}
	return EventResendIntervalRequest{Mode: RequestModeGet}, expectRequest(d, RequestTypeStatus, RequestEventResendInterval)
}
