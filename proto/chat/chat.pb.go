// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: chat.proto

package chat

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type FeedEvent_Kind int32

const (
	FeedEvent_KIND_UNSPECIFIED FeedEvent_Kind = 0
	FeedEvent_KIND_INSERT      FeedEvent_Kind = 1
	FeedEvent_KIND_UPDATE      FeedEvent_Kind = 2
)

// Enum value maps for FeedEvent_Kind.
var (
	FeedEvent_Kind_name = map[int32]string{
		0: "KIND_UNSPECIFIED",
		1: "KIND_INSERT",
		2: "KIND_UPDATE",
	}
	FeedEvent_Kind_value = map[string]int32{
		"KIND_UNSPECIFIED": 0,
		"KIND_INSERT":      1,
		"KIND_UPDATE":      2,
	}
)

func (x FeedEvent_Kind) Enum() *FeedEvent_Kind {
	p := new(FeedEvent_Kind)
	*p = x
	return p
}

func (x FeedEvent_Kind) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (FeedEvent_Kind) Descriptor() protoreflect.EnumDescriptor {
	return file_chat_proto_enumTypes[0].Descriptor()
}

func (FeedEvent_Kind) Type() protoreflect.EnumType {
	return &file_chat_proto_enumTypes[0]
}

func (x FeedEvent_Kind) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use FeedEvent_Kind.Descriptor instead.
func (FeedEvent_Kind) EnumDescriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{13, 0}
}

type MessageRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SenderId      string                 `protobuf:"bytes,2,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	ReceiverId    string                 `protobuf:"bytes,3,opt,name=receiver_id,json=receiverId,proto3" json:"receiver_id,omitempty"`
	Content       string                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MessageRecord) Reset() {
	*x = MessageRecord{}
	mi := &file_chat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MessageRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MessageRecord) ProtoMessage() {}

func (x *MessageRecord) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MessageRecord.ProtoReflect.Descriptor instead.
func (*MessageRecord) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{0}
}

func (x *MessageRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MessageRecord) GetSenderId() string {
	if x != nil {
		return x.SenderId
	}
	return ""
}

func (x *MessageRecord) GetReceiverId() string {
	if x != nil {
		return x.ReceiverId
	}
	return ""
}

func (x *MessageRecord) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *MessageRecord) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type ProfileRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProfileRecord) Reset() {
	*x = ProfileRecord{}
	mi := &file_chat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProfileRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProfileRecord) ProtoMessage() {}

func (x *ProfileRecord) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProfileRecord.ProtoReflect.Descriptor instead.
func (*ProfileRecord) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{1}
}

func (x *ProfileRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ProfileRecord) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *ProfileRecord) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type PostMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiverId    string                 `protobuf:"bytes,1,opt,name=receiver_id,json=receiverId,proto3" json:"receiver_id,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PostMessageRequest) Reset() {
	*x = PostMessageRequest{}
	mi := &file_chat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PostMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PostMessageRequest) ProtoMessage() {}

func (x *PostMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PostMessageRequest.ProtoReflect.Descriptor instead.
func (*PostMessageRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{2}
}

func (x *PostMessageRequest) GetReceiverId() string {
	if x != nil {
		return x.ReceiverId
	}
	return ""
}

func (x *PostMessageRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type PostMessageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       *MessageRecord         `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PostMessageResponse) Reset() {
	*x = PostMessageResponse{}
	mi := &file_chat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PostMessageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PostMessageResponse) ProtoMessage() {}

func (x *PostMessageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PostMessageResponse.ProtoReflect.Descriptor instead.
func (*PostMessageResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{3}
}

func (x *PostMessageResponse) GetMessage() *MessageRecord {
	if x != nil {
		return x.Message
	}
	return nil
}

type FetchConversationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PeerId        string                 `protobuf:"bytes,1,opt,name=peer_id,json=peerId,proto3" json:"peer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FetchConversationRequest) Reset() {
	*x = FetchConversationRequest{}
	mi := &file_chat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FetchConversationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FetchConversationRequest) ProtoMessage() {}

func (x *FetchConversationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FetchConversationRequest.ProtoReflect.Descriptor instead.
func (*FetchConversationRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{4}
}

func (x *FetchConversationRequest) GetPeerId() string {
	if x != nil {
		return x.PeerId
	}
	return ""
}

type FetchConversationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*MessageRecord       `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FetchConversationResponse) Reset() {
	*x = FetchConversationResponse{}
	mi := &file_chat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FetchConversationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FetchConversationResponse) ProtoMessage() {}

func (x *FetchConversationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FetchConversationResponse.ProtoReflect.Descriptor instead.
func (*FetchConversationResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{5}
}

func (x *FetchConversationResponse) GetMessages() []*MessageRecord {
	if x != nil {
		return x.Messages
	}
	return nil
}

type FetchAllMessagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FetchAllMessagesRequest) Reset() {
	*x = FetchAllMessagesRequest{}
	mi := &file_chat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FetchAllMessagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FetchAllMessagesRequest) ProtoMessage() {}

func (x *FetchAllMessagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FetchAllMessagesRequest.ProtoReflect.Descriptor instead.
func (*FetchAllMessagesRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{6}
}

type FetchAllMessagesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*MessageRecord       `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FetchAllMessagesResponse) Reset() {
	*x = FetchAllMessagesResponse{}
	mi := &file_chat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FetchAllMessagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FetchAllMessagesResponse) ProtoMessage() {}

func (x *FetchAllMessagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FetchAllMessagesResponse.ProtoReflect.Descriptor instead.
func (*FetchAllMessagesResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{7}
}

func (x *FetchAllMessagesResponse) GetMessages() []*MessageRecord {
	if x != nil {
		return x.Messages
	}
	return nil
}

type SearchProfilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	ExcludeIds    []string               `protobuf:"bytes,2,rep,name=exclude_ids,json=excludeIds,proto3" json:"exclude_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchProfilesRequest) Reset() {
	*x = SearchProfilesRequest{}
	mi := &file_chat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchProfilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchProfilesRequest) ProtoMessage() {}

func (x *SearchProfilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchProfilesRequest.ProtoReflect.Descriptor instead.
func (*SearchProfilesRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{8}
}

func (x *SearchProfilesRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SearchProfilesRequest) GetExcludeIds() []string {
	if x != nil {
		return x.ExcludeIds
	}
	return nil
}

type SearchProfilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*ProfileRecord       `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchProfilesResponse) Reset() {
	*x = SearchProfilesResponse{}
	mi := &file_chat_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchProfilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchProfilesResponse) ProtoMessage() {}

func (x *SearchProfilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchProfilesResponse.ProtoReflect.Descriptor instead.
func (*SearchProfilesResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{9}
}

func (x *SearchProfilesResponse) GetProfiles() []*ProfileRecord {
	if x != nil {
		return x.Profiles
	}
	return nil
}

type GetProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileRequest) Reset() {
	*x = GetProfileRequest{}
	mi := &file_chat_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileRequest) ProtoMessage() {}

func (x *GetProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileRequest.ProtoReflect.Descriptor instead.
func (*GetProfileRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{10}
}

func (x *GetProfileRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *ProfileRecord         `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileResponse) Reset() {
	*x = GetProfileResponse{}
	mi := &file_chat_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileResponse) ProtoMessage() {}

func (x *GetProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileResponse.ProtoReflect.Descriptor instead.
func (*GetProfileResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{11}
}

func (x *GetProfileResponse) GetProfile() *ProfileRecord {
	if x != nil {
		return x.Profile
	}
	return nil
}

type SubscribeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubscribeRequest) Reset() {
	*x = SubscribeRequest{}
	mi := &file_chat_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeRequest) ProtoMessage() {}

func (x *SubscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeRequest.ProtoReflect.Descriptor instead.
func (*SubscribeRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{12}
}

type FeedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          FeedEvent_Kind         `protobuf:"varint,1,opt,name=kind,proto3,enum=pingly.chat.FeedEvent_Kind" json:"kind,omitempty"`
	Message       *MessageRecord         `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FeedEvent) Reset() {
	*x = FeedEvent{}
	mi := &file_chat_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FeedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FeedEvent) ProtoMessage() {}

func (x *FeedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FeedEvent.ProtoReflect.Descriptor instead.
func (*FeedEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{13}
}

func (x *FeedEvent) GetKind() FeedEvent_Kind {
	if x != nil {
		return x.Kind
	}
	return FeedEvent_KIND_UNSPECIFIED
}

func (x *FeedEvent) GetMessage() *MessageRecord {
	if x != nil {
		return x.Message
	}
	return nil
}

var File_chat_proto protoreflect.FileDescriptor

const file_chat_proto_rawDesc = "" +
	"\n" +
	"\n" +
	"chat.proto\x12\vpingly.chat\x1a\x1fgoogle/protobuf/timestamp.proto\"\xb2\x01\n" +
	"\rMessageRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tsender_id\x18\x02 \x01(\tR\bsenderId\x12\x1f\n" +
	"\vreceiver_id\x18\x03 \x01(\tR\n" +
	"receiverId\x12\x18\n" +
	"\acontent\x18\x04 \x01(\tR\acontent\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"Q\n" +
	"\rProfileRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\busername\x18\x02 \x01(\tR\busername\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\"O\n" +
	"\x12PostMessageRequest\x12\x1f\n" +
	"\vreceiver_id\x18\x01 \x01(\tR\n" +
	"receiverId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"K\n" +
	"\x13PostMessageResponse\x124\n" +
	"\amessage\x18\x01 \x01(\v2\x1a.pingly.chat.MessageRecordR\amessage\"3\n" +
	"\x18FetchConversationRequest\x12\x17\n" +
	"\apeer_id\x18\x01 \x01(\tR\x06peerId\"S\n" +
	"\x19FetchConversationResponse\x126\n" +
	"\bmessages\x18\x01 \x03(\v2\x1a.pingly.chat.MessageRecordR\bmessages\"\x19\n" +
	"\x17FetchAllMessagesRequest\"R\n" +
	"\x18FetchAllMessagesResponse\x126\n" +
	"\bmessages\x18\x01 \x03(\v2\x1a.pingly.chat.MessageRecordR\bmessages\"N\n" +
	"\x15SearchProfilesRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x1f\n" +
	"\vexclude_ids\x18\x02 \x03(\tR\n" +
	"excludeIds\"P\n" +
	"\x16SearchProfilesResponse\x126\n" +
	"\bprofiles\x18\x01 \x03(\v2\x1a.pingly.chat.ProfileRecordR\bprofiles\",\n" +
	"\x11GetProfileRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"J\n" +
	"\x12GetProfileResponse\x124\n" +
	"\aprofile\x18\x01 \x01(\v2\x1a.pingly.chat.ProfileRecordR\aprofile\"\x12\n" +
	"\x10SubscribeRequest\"\xb2\x01\n" +
	"\tFeedEvent\x12/\n" +
	"\x04kind\x18\x01 \x01(\x0e2\x1b.pingly.chat.FeedEvent.KindR\x04kind\x124\n" +
	"\amessage\x18\x02 \x01(\v2\x1a.pingly.chat.MessageRecordR\amessage\">\n" +
	"\x04Kind\x12\x14\n" +
	"\x10KIND_UNSPECIFIED\x10\x00\x12\x0f\n" +
	"\vKIND_INSERT\x10\x01\x12\x0f\n" +
	"\vKIND_UPDATE\x10\x022\x94\x04\n" +
	"\vChatService\x12P\n" +
	"\vPostMessage\x12\x1f.pingly.chat.PostMessageRequest\x1a .pingly.chat.PostMessageResponse\x12b\n" +
	"\x11FetchConversation\x12%.pingly.chat.FetchConversationRequest\x1a&.pingly.chat.FetchConversationResponse\x12_\n" +
	"\x10FetchAllMessages\x12$.pingly.chat.FetchAllMessagesRequest\x1a%.pingly.chat.FetchAllMessagesResponse\x12Y\n" +
	"\x0eSearchProfiles\x12\".pingly.chat.SearchProfilesRequest\x1a#.pingly.chat.SearchProfilesResponse\x12M\n" +
	"\n" +
	"GetProfile\x12\x1e.pingly.chat.GetProfileRequest\x1a\x1f.pingly.chat.GetProfileResponse\x12D\n" +
	"\tSubscribe\x12\x1d.pingly.chat.SubscribeRequest\x1a\x16.pingly.chat.FeedEvent0\x01B\x13Z\x11pingly/proto/chatb\x06proto3"

var (
	file_chat_proto_rawDescOnce sync.Once
	file_chat_proto_rawDescData []byte
)

func file_chat_proto_rawDescGZIP() []byte {
	file_chat_proto_rawDescOnce.Do(func() {
		file_chat_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_chat_proto_rawDesc), len(file_chat_proto_rawDesc)))
	})
	return file_chat_proto_rawDescData
}

var file_chat_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_chat_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_chat_proto_goTypes = []any{
	(FeedEvent_Kind)(0),               // 0: pingly.chat.FeedEvent.Kind
	(*MessageRecord)(nil),             // 1: pingly.chat.MessageRecord
	(*ProfileRecord)(nil),             // 2: pingly.chat.ProfileRecord
	(*PostMessageRequest)(nil),        // 3: pingly.chat.PostMessageRequest
	(*PostMessageResponse)(nil),       // 4: pingly.chat.PostMessageResponse
	(*FetchConversationRequest)(nil),  // 5: pingly.chat.FetchConversationRequest
	(*FetchConversationResponse)(nil), // 6: pingly.chat.FetchConversationResponse
	(*FetchAllMessagesRequest)(nil),   // 7: pingly.chat.FetchAllMessagesRequest
	(*FetchAllMessagesResponse)(nil),  // 8: pingly.chat.FetchAllMessagesResponse
	(*SearchProfilesRequest)(nil),     // 9: pingly.chat.SearchProfilesRequest
	(*SearchProfilesResponse)(nil),    // 10: pingly.chat.SearchProfilesResponse
	(*GetProfileRequest)(nil),         // 11: pingly.chat.GetProfileRequest
	(*GetProfileResponse)(nil),        // 12: pingly.chat.GetProfileResponse
	(*SubscribeRequest)(nil),          // 13: pingly.chat.SubscribeRequest
	(*FeedEvent)(nil),                 // 14: pingly.chat.FeedEvent
	(*timestamppb.Timestamp)(nil),     // 15: google.protobuf.Timestamp
}
var file_chat_proto_depIdxs = []int32{
	15, // 0: pingly.chat.MessageRecord.created_at:type_name -> google.protobuf.Timestamp
	1,  // 1: pingly.chat.PostMessageResponse.message:type_name -> pingly.chat.MessageRecord
	1,  // 2: pingly.chat.FetchConversationResponse.messages:type_name -> pingly.chat.MessageRecord
	1,  // 3: pingly.chat.FetchAllMessagesResponse.messages:type_name -> pingly.chat.MessageRecord
	2,  // 4: pingly.chat.SearchProfilesResponse.profiles:type_name -> pingly.chat.ProfileRecord
	2,  // 5: pingly.chat.GetProfileResponse.profile:type_name -> pingly.chat.ProfileRecord
	0,  // 6: pingly.chat.FeedEvent.kind:type_name -> pingly.chat.FeedEvent.Kind
	1,  // 7: pingly.chat.FeedEvent.message:type_name -> pingly.chat.MessageRecord
	3,  // 8: pingly.chat.ChatService.PostMessage:input_type -> pingly.chat.PostMessageRequest
	5,  // 9: pingly.chat.ChatService.FetchConversation:input_type -> pingly.chat.FetchConversationRequest
	7,  // 10: pingly.chat.ChatService.FetchAllMessages:input_type -> pingly.chat.FetchAllMessagesRequest
	9,  // 11: pingly.chat.ChatService.SearchProfiles:input_type -> pingly.chat.SearchProfilesRequest
	11, // 12: pingly.chat.ChatService.GetProfile:input_type -> pingly.chat.GetProfileRequest
	13, // 13: pingly.chat.ChatService.Subscribe:input_type -> pingly.chat.SubscribeRequest
	4,  // 14: pingly.chat.ChatService.PostMessage:output_type -> pingly.chat.PostMessageResponse
	6,  // 15: pingly.chat.ChatService.FetchConversation:output_type -> pingly.chat.FetchConversationResponse
	8,  // 16: pingly.chat.ChatService.FetchAllMessages:output_type -> pingly.chat.FetchAllMessagesResponse
	10, // 17: pingly.chat.ChatService.SearchProfiles:output_type -> pingly.chat.SearchProfilesResponse
	12, // 18: pingly.chat.ChatService.GetProfile:output_type -> pingly.chat.GetProfileResponse
	14, // 19: pingly.chat.ChatService.Subscribe:output_type -> pingly.chat.FeedEvent
	14, // [14:20] is the sub-list for method output_type
	8,  // [8:14] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_chat_proto_init() }
func file_chat_proto_init() {
	if File_chat_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_chat_proto_rawDesc), len(file_chat_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_chat_proto_goTypes,
		DependencyIndexes: file_chat_proto_depIdxs,
		EnumInfos:         file_chat_proto_enumTypes,
		MessageInfos:      file_chat_proto_msgTypes,
	}.Build()
	File_chat_proto = out.File
	file_chat_proto_goTypes = nil
	file_chat_proto_depIdxs = nil
}
