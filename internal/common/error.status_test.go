// Package common - Test chuyển đổi lỗi MongoDB sang lỗi hệ thống.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) phải trả về nil, nhận: %v", got)
	}
}

func TestConvertMongoError_PreservesNotFound(t *testing.T) {
	got := ConvertMongoError(ErrNotFound)
	if !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên để caller trả 404, nhận: %v", got)
	}
}

func TestConvertMongoError_CommandErrorRanges(t *testing.T) {
	cases := []struct {
		name string
		code int32
		want error
	}{
		{"dải connection", 150, ErrMongoConnection},
		{"dải auth", 250, ErrMongoAuth},
		{"dải query", 350, ErrMongoQuery},
		{"dải write", 450, ErrMongoWrite},
		{"dải system", 550, ErrMongoSystem},
	}
	for _, tc := range cases {
		err := mongo.CommandError{Code: tc.code, Message: "boom"}
		got := ConvertMongoError(err)
		if !errors.Is(got, tc.want) {
			t.Errorf("%s: ConvertMongoError(code=%d) = %v, muốn %v", tc.name, tc.code, got, tc.want)
		}
	}
}

func TestConvertMongoError_UnknownError(t *testing.T) {
	got := ConvertMongoError(errors.New("lỗi không xác định"))

	var customErr *Error
	if !errors.As(got, &customErr) {
		t.Fatalf("lỗi không nhận diện được phải được wrap thành *common.Error, nhận: %T", got)
	}
	if customErr.Code.Code != ErrCodeDatabase.Code {
		t.Errorf("mã lỗi = %s, muốn %s", customErr.Code.Code, ErrCodeDatabase.Code)
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("status code = %d, muốn %d", customErr.StatusCode, StatusInternalServerError)
	}
}

func TestErrorIs_MatchesByCodeAndMessage(t *testing.T) {
	if !errors.Is(ErrInvalidPeriod, ErrInvalidPeriod) {
		t.Error("errors.Is phải nhận diện cùng một custom error")
	}
	if errors.Is(ErrInvalidPeriod, ErrNoDataForPeriod) {
		t.Error("errors.Is không được nhầm hai lỗi khác mã")
	}
}

func TestNewError_Fields(t *testing.T) {
	err := NewError(ErrCodeValidationPeriod, "chu kỳ sai", StatusBadRequest, map[string]int{"month": 13})

	var customErr *Error
	if !errors.As(err, &customErr) {
		t.Fatalf("NewError phải trả về *common.Error, nhận: %T", err)
	}
	if customErr.Error() != "chu kỳ sai" {
		t.Errorf("Error() = %q, muốn message gốc", customErr.Error())
	}
	if customErr.Code.Code != "VAL_003" {
		t.Errorf("mã lỗi = %s, muốn VAL_003", customErr.Code.Code)
	}
	if customErr.StatusCode != StatusBadRequest {
		t.Errorf("status code = %d, muốn %d", customErr.StatusCode, StatusBadRequest)
	}
}
