package jcm

// UidResponse acknowledges a UidRequest. It carries no payload beyond the
// ResponseCode.
type UidResponse struct {
	Code ResponseCode
}

func (r UidResponse) ToMessageData(confId ConfId, uid uint8, msgType MessageType) MessageData {
	return buildResponseData(confId, uid, msgType, RequestUid, Response{Code: r.Code})
}

func UidResponseFromMessageData(d MessageData) (UidResponse, error) {
	if err := expectRequest(d, d.MessageType, RequestUid); err != nil {
		return UidResponse{}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return UidResponse{}, err
	}
	return UidResponse{Code: resp.Code}, nil
}

// StatusResponse reports the device's overall DeviceStatus and the status of
// each addressable unit.
type StatusResponse struct {
	Code   ResponseCode
	Status DeviceStatus
	Units  []UnitStatus
}

func (r StatusResponse) payload() []byte {
	if !r.Code.IsOk() {
		return nil
	}
	out := append([]byte{}, r.Status.Bytes()...)
	out = append(out, UnitStatusListBytes(r.Units)...)
	return out
}

func (r StatusResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildResponseData(confId, uid, RequestTypeStatus, RequestStatus, Response{Code: r.Code, Additional: r.payload()})
}

func StatusResponseFromMessageData(d MessageData) (StatusResponse, error) {
	if err := expectRequest(d, RequestTypeStatus, RequestStatus); err != nil {
		return StatusResponse{}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return StatusResponse{}, err
	}
	out := StatusResponse{Code: resp.Code}
	if !resp.Code.IsOk() {
		return out, nil
	}
	if len(resp.Additional) < 2 {
		return out, &LengthError{Field: "status_response", Observed: len(resp.Additional), Required: 2}
	}
	status, err := DeviceStatusFromBytes(resp.Additional[:2])
	if err != nil {
		return out, err
	}
	units, err := UnitStatusListFromBytes(resp.Additional[2:])
	if err != nil {
		return out, err
	}
	out.Status = status
	out.Units = units
	return out, nil
}

// simpleResponse is the shared payload-free shape used by requests whose
// response carries only a ResponseCode (reset, inhibit, idle, stack, reject,
// hold, collect).
type simpleResponse struct {
	Code ResponseCode
}

func simpleResponseFromMessageData(d MessageData, msgType MessageType, code RequestCode) (simpleResponse, error) {
	if err := expectRequest(d, msgType, code); err != nil {
		return simpleResponse{}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return simpleResponse{}, err
	}
	return simpleResponse{Code: resp.Code}, nil
}

type ResetResponse struct{ Code ResponseCode }

func (r ResetResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildResponseData(confId, uid, RequestTypeOperation, RequestReset, Response{Code: r.Code})
}

func ResetResponseFromMessageData(d MessageData) (ResetResponse, error) {
	s, err := simpleResponseFromMessageData(d, RequestTypeOperation, RequestReset)
	return ResetResponse{Code: s.Code}, err
}

type InhibitResponse struct{ Code ResponseCode }

func (r InhibitResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildResponseData(confId, uid, RequestTypeOperation, RequestInhibit, Response{Code: r.Code})
}

func InhibitResponseFromMessageData(d MessageData) (InhibitResponse, error) {
	s, err := simpleResponseFromMessageData(d, RequestTypeOperation, RequestInhibit)
	return InhibitResponse{Code: s.Code}, err
}

type IdleResponse struct{ Code ResponseCode }

func (r IdleResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildResponseData(confId, uid, RequestTypeOperation, RequestIdle, Response{Code: r.Code})
}

func IdleResponseFromMessageData(d MessageData) (IdleResponse, error) {
	s, err := simpleResponseFromMessageData(d, RequestTypeOperation, RequestIdle)
	return IdleResponse{Code: s.Code}, err
}

type StackResponse struct{ Code ResponseCode }

func (r StackResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildResponseData(confId, uid, RequestTypeOperation, RequestStack, Response{Code: r.Code})
}

func StackResponseFromMessageData(d MessageData) (StackResponse, error) {
	s, err := simpleResponseFromMessageData(d, RequestTypeOperation, RequestStack)
	return StackResponse{Code: s.Code}, err
}

type RejectResponse struct{ Code ResponseCode }

func (r RejectResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildResponseData(confId, uid, RequestTypeOperation, RequestReject, Response{Code: r.Code})
}

func RejectResponseFromMessageData(d MessageData) (RejectResponse, error) {
	s, err := simpleResponseFromMessageData(d, RequestTypeOperation, RequestReject)
	return RejectResponse{Code: s.Code}, err
}

type HoldResponse struct{ Code ResponseCode }

func (r HoldResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildResponseData(confId, uid, RequestTypeOperation, RequestHold, Response{Code: r.Code})
}

func HoldResponseFromMessageData(d MessageData) (HoldResponse, error) {
	s, err := simpleResponseFromMessageData(d, RequestTypeOperation, RequestHold)
	return HoldResponse{Code: s.Code}, err
}

// CollectResponse acknowledges any of the three collect request codes; Mode
// is decoded from the wire code, which alone identifies which one was used.
type CollectResponse struct {
	Mode CollectMode
	Code ResponseCode
}

func (r CollectResponse) requestCode() RequestCode {
	return CollectRequest{Mode: r.Mode}.requestCode()
}

func (r CollectResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	return buildResponseData(confId, uid, RequestTypeOperation, r.requestCode(), Response{Code: r.Code})
}

func CollectResponseFromMessageData(d MessageData) (CollectResponse, error) {
	req, err := CollectRequestFromMessageData(MessageData{MessageType: d.MessageType, Code: d.Code})
	if err != nil {
		return CollectResponse{}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return CollectResponse{}, err
	}
	return CollectResponse{Mode: req.Mode, Code: resp.Code}, nil
}

// DenominationDisableResponse answers a DenominationDisableRequest; Get mode
// carries the current List in a successful response, Set mode carries no
// payload beyond the ResponseCode.
type DenominationDisableResponse struct {
	Mode RequestMode
	Code ResponseCode
	List DenominationDisableList
}

func (r DenominationDisableResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	msgType := r.Mode.messageType(RequestTypeSetFeature, RequestTypeStatus)
	var payload []byte
	if r.Mode == RequestModeGet && r.Code.IsOk() {
		payload = r.List.Bytes()
	}
	return buildResponseData(confId, uid, msgType, RequestDenominationDisable, Response{Code: r.Code, Additional: payload})
}

func DenominationDisableResponseFromMessageData(d MessageData) (DenominationDisableResponse, error) {
	mode := RequestModeGet
	if d.MessageType == RequestTypeSetFeature {
		mode = RequestModeSet
	}
	if err := expectRequest(d, d.MessageType, RequestDenominationDisable); err != nil {
		return DenominationDisableResponse{}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return DenominationDisableResponse{}, err
	}
	out := DenominationDisableResponse{Mode: mode, Code: resp.Code}
	if mode == RequestModeGet && resp.Code.IsOk() {
		out.List = RelaxedDenominationDisableListFromBytes(resp.Additional)
	}
	return out, nil
}

// DirectionDisableResponse answers a DirectionDisableRequest.
type DirectionDisableResponse struct {
	Mode      RequestMode
	Code      ResponseCode
	Direction InhibitDirection
}

func (r DirectionDisableResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	msgType := r.Mode.messageType(RequestTypeSetFeature, RequestTypeStatus)
	var payload []byte
	if r.Mode == RequestModeGet && r.Code.IsOk() {
		payload = r.Direction.Bytes()
	}
	return buildResponseData(confId, uid, msgType, RequestDirectionDisable, Response{Code: r.Code, Additional: payload})
}

func DirectionDisableResponseFromMessageData(d MessageData) (DirectionDisableResponse, error) {
	mode := RequestModeGet
	if d.MessageType == RequestTypeSetFeature {
		mode = RequestModeSet
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return DirectionDisableResponse{}, err
	}
	out := DirectionDisableResponse{Mode: mode, Code: resp.Code}
	if mode == RequestModeGet && resp.Code.IsOk() && len(resp.Additional) >= 1 {
		out.Direction = InhibitDirectionFromU8(resp.Additional[0])
	}
	return out, nil
}

// CurrencyAssignResponse carries the device's assignment table.
type CurrencyAssignResponse struct {
	Code ResponseCode
	List CurrencyAssignList
}

func (r CurrencyAssignResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	var payload []byte
	if r.Code.IsOk() {
		payload = r.List.Bytes()
	}
	return buildResponseData(confId, uid, RequestTypeStatus, RequestCurrencyAssign, Response{Code: r.Code, Additional: payload})
}

func CurrencyAssignResponseFromMessageData(d MessageData) (CurrencyAssignResponse, error) {
	if err := expectRequest(d, RequestTypeStatus, RequestCurrencyAssign); err != nil {
		return CurrencyAssignResponse{}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return CurrencyAssignResponse{}, err
	}
	out := CurrencyAssignResponse{Code: resp.Code}
	if resp.Code.IsOk() {
		list, err := RelaxedCurrencyAssignListFromBytes(resp.Additional)
		if err != nil {
			return out, err
		}
		out.List = list
	}
	return out, nil
}

// CashBoxSizeResponse carries the cash box capacity.
type CashBoxSizeResponse struct {
	Code ResponseCode
	Size CashBoxSize
}

func (r CashBoxSizeResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	var payload []byte
	if r.Code.IsOk() {
		payload = r.Size.Bytes()
	}
	return buildResponseData(confId, uid, RequestTypeStatus, RequestCashBoxSize, Response{Code: r.Code, Additional: payload})
}

func CashBoxSizeResponseFromMessageData(d MessageData) (CashBoxSizeResponse, error) {
	if err := expectRequest(d, RequestTypeStatus, RequestCashBoxSize); err != nil {
		return CashBoxSizeResponse{}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return CashBoxSizeResponse{}, err
	}
	out := CashBoxSizeResponse{Code: resp.Code}
	if resp.Code.IsOk() {
		size, err := CashBoxSizeFromBytes(resp.Additional)
		if err != nil {
			return out, err
		}
		out.Size = size
	}
	return out, nil
}

// NearFullResponse answers a NearFullRequest.
type NearFullResponse struct {
	Mode RequestMode
	Code ResponseCode
	Data NearFullData
}

func (r NearFullResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	msgType := r.Mode.messageType(RequestTypeSetFeature, RequestTypeStatus)
	var payload []byte
	if r.Mode == RequestModeGet && r.Code.IsOk() {
		payload = r.Data.Bytes()
	}
	return buildResponseData(confId, uid, msgType, RequestNearFull, Response{Code: r.Code, Additional: payload})
}

func NearFullResponseFromMessageData(d MessageData) (NearFullResponse, error) {
	mode := RequestModeGet
	if d.MessageType == RequestTypeSetFeature {
		mode = RequestModeSet
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return NearFullResponse{}, err
	}
	out := NearFullResponse{Mode: mode, Code: resp.Code}
	if mode == RequestModeGet && resp.Code.IsOk() {
		data, err := NearFullDataFromBytes(resp.Additional)
		if err != nil {
			return out, err
		}
		out.Data = data
	}
	return out, nil
}

// KeyResponse answers a KeyRequest.
type KeyResponse struct {
	Mode RequestMode
	Code ResponseCode
	List KeySettingList
}

func (r KeyResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	msgType := r.Mode.messageType(RequestTypeSetFeature, RequestTypeStatus)
	var payload []byte
	if r.Mode == RequestModeGet && r.Code.IsOk() {
		payload = r.List.Bytes()
	}
	return buildResponseData(confId, uid, msgType, RequestKey, Response{Code: r.Code, Additional: payload})
}

func KeyResponseFromMessageData(d MessageData) (KeyResponse, error) {
	mode := RequestModeGet
	if d.MessageType == RequestTypeSetFeature {
		mode = RequestModeSet
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return KeyResponse{}, err
	}
	out := KeyResponse{Mode: mode, Code: resp.Code}
	if mode == RequestModeGet && resp.Code.IsOk() {
		list, err := KeySettingListFromBytes(resp.Additional)
		if err != nil {
			return out, err
		}
		out.List = list
	}
	return out, nil
}

// VersionResponse carries the device's FirmwareVersion.
type VersionResponse struct {
	Code    ResponseCode
	Version FirmwareVersion
}

func (r VersionResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	var payload []byte
	if r.Code.IsOk() {
		payload = r.Version.Bytes()
	}
	return buildResponseData(confId, uid, RequestTypeStatus, RequestVersion, Response{Code: r.Code, Additional: payload})
}

func VersionResponseFromMessageData(d MessageData) (VersionResponse, error) {
	if err := expectRequest(d, RequestTypeStatus, RequestVersion); err != nil {
		return VersionResponse{}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return VersionResponse{}, err
	}
	out := VersionResponse{Code: resp.Code}
	if resp.Code.IsOk() {
		v, err := FirmwareVersionFromBytes(resp.Additional)
		if err != nil {
			return out, err
		}
		out.Version = v
	}
	return out, nil
}

// ModelNameResponse carries the device's product name.
type ModelNameResponse struct {
	Code ResponseCode
	Name string
}

func (r ModelNameResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	var payload []byte
	if r.Code.IsOk() {
		payload = ModelNameBytes(r.Name)
	}
	return buildResponseData(confId, uid, RequestTypeStatus, RequestModelName, Response{Code: r.Code, Additional: payload})
}

func ModelNameResponseFromMessageData(d MessageData) (ModelNameResponse, error) {
	if err := expectRequest(d, RequestTypeStatus, RequestModelName); err != nil {
		return ModelNameResponse{}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return ModelNameResponse{}, err
	}
	out := ModelNameResponse{Code: resp.Code}
	if resp.Code.IsOk() {
		name, err := ModelNameFromBytes(resp.Additional)
		if err != nil {
			return out, err
		}
		out.Name = name
	}
	return out, nil
}

// ProgramSignatureResponse answers a ProgramSignatureRequest; in Status mode
// it echoes the supported HashAlgorithm, in Operation mode it reports only
// whether the firmware matched via Code.
type ProgramSignatureResponse struct {
	Mode RequestMode
	Code ResponseCode
	Hash HashAlgorithm
}

func (r ProgramSignatureResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	if r.Mode == RequestModeSet {
		return buildResponseData(confId, uid, RequestTypeOperation, RequestProgramSignature, Response{Code: r.Code})
	}
	var payload []byte
	if r.Code.IsOk() {
		payload = r.Hash.Bytes()
	}
	return buildResponseData(confId, uid, RequestTypeStatus, RequestProgramSignature, Response{Code: r.Code, Additional: payload})
}

func ProgramSignatureResponseFromMessageData(d MessageData) (ProgramSignatureResponse, error) {
	if d.MessageType == RequestTypeOperation {
		s, err := simpleResponseFromMessageData(d, RequestTypeOperation, RequestProgramSignature)
		return ProgramSignatureResponse{Mode: RequestModeSet, Code: s.Code}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return ProgramSignatureResponse{}, err
	}
	out := ProgramSignatureResponse{Mode: RequestModeGet, Code: resp.Code}
	if resp.Code.IsOk() {
		hash, err := HashAlgorithmFromRequest(resp.Additional)
		if err != nil {
			return out, err
		}
		out.Hash = hash
	}
	return out, nil
}

// SerialNumberResponse carries the device serial number.
type SerialNumberResponse struct {
	Code   ResponseCode
	Serial string
}

func (r SerialNumberResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	var payload []byte
	if r.Code.IsOk() {
		payload = ModelNameBytes(r.Serial)
	}
	return buildResponseData(confId, uid, RequestTypeStatus, RequestSerialNumber, Response{Code: r.Code, Additional: payload})
}

func SerialNumberResponseFromMessageData(d MessageData) (SerialNumberResponse, error) {
	if err := expectRequest(d, RequestTypeStatus, RequestSerialNumber); err != nil {
		return SerialNumberResponse{}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return SerialNumberResponse{}, err
	}
	out := SerialNumberResponse{Code: resp.Code}
	if resp.Code.IsOk() {
		serial, err := ModelNameFromBytes(resp.Additional)
		if err != nil {
			return out, err
		}
		out.Serial = serial
	}
	return out, nil
}

// NoteImageResponse carries either an ImageSize (when the request's Block
// was ImageBlockQuery) or a raw image block. Decoding tells the two apart by
// payload length alone, not by the request it corresponds to.
type NoteImageResponse struct {
	Code  ResponseCode
	Size  *ImageSize
	Block []byte
}

func (r NoteImageResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	var payload []byte
	if r.Code.IsOk() {
		if r.Size != nil {
			payload = r.Size.Bytes()
		} else {
			payload = r.Block
		}
	}
	return buildResponseData(confId, uid, RequestTypeStatus, RequestNoteDataInfo, Response{Code: r.Code, Additional: payload})
}

// NoteImageResponseFromMessageData decodes a successful payload of exactly
// ImageSize's length into Size and any other successful payload into Block
// unvalidated; a raw image block that happens to be 5 bytes long is
// therefore decoded as an ImageSize.
func NoteImageResponseFromMessageData(d MessageData) (NoteImageResponse, error) {
	if err := expectRequest(d, RequestTypeStatus, RequestNoteDataInfo); err != nil {
		return NoteImageResponse{}, err
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return NoteImageResponse{}, err
	}
	out := NoteImageResponse{Code: resp.Code}
	if resp.Code.IsOk() {
		if len(resp.Additional) == (ImageSize{}).Len() {
			size, err := ImageSizeFromBytes(resp.Additional)
			if err == nil {
				out.Size = &size
				return out, nil
			}
		}
		out.Block = resp.Additional
	}
	return out, nil
}

// EventResendIntervalResponse answers an EventResendIntervalRequest.
type EventResendIntervalResponse struct {
	Mode     RequestMode
	Code     ResponseCode
	Interval EventResendInterval
}

func (r EventResendIntervalResponse) ToMessageData(confId ConfId, uid uint8) MessageData {
	msgType := r.Mode.messageType(RequestTypeSetFeature, RequestTypeStatus)
	var payload []byte
	if r.Mode == RequestModeGet && r.Code.IsOk() {
		payload = []byte{uint8(r.Interval)}
	}
	return buildResponseData(confId, uid, msgType, RequestEventResendInterval, Response{Code: r.Code, Additional: payload})
}

func EventResendIntervalResponseFromMessageData(d MessageData) (EventResendIntervalResponse, error) {
	mode := RequestModeGet
	if d.MessageType == RequestTypeSetFeature {
		mode = RequestModeSet
	}
	resp, err := ResponseFromBytes(d.Additional)
	if err != nil {
		return EventResendIntervalResponse{}, err
	}
	out := EventResendIntervalResponse{Mode: mode, Code: resp.Code}
	if mode == RequestModeGet && resp.Code.IsOk() && len(resp.Additional) >= 1 {
		out.Interval = EventResendIntervalFromU8(resp.Additional[0])
	}
	return out, nil
}
