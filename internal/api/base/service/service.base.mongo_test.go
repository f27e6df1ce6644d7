// Package basesvc - Test chuyển đổi dữ liệu update cho thao tác Upsert.
package basesvc

import (
	"testing"
)

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	data := map[string]interface{}{
		"month": 6,
		"year":  2025,
	}

	update, err := ToUpdateData(data)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update.Set == nil {
		t.Fatal("map thường phải được wrap trong $set, Set đang nil")
	}
	if len(update.Set) != 2 {
		t.Errorf("Set phải có 2 trường, nhận: %d", len(update.Set))
	}
	if _, ok := update.Set["month"]; !ok {
		t.Error("Set phải chứa trường month")
	}
	if _, ok := update.Set["year"]; !ok {
		t.Error("Set phải chứa trường year")
	}
	if update.SetOnInsert != nil {
		t.Errorf("SetOnInsert phải là nil khi data không có operator, nhận: %v", update.SetOnInsert)
	}
}

func TestToUpdateData_StructUsesBsonTags(t *testing.T) {
	type doc struct {
		Name  string `bson:"name"`
		Month int    `bson:"month"`
	}

	update, err := ToUpdateData(doc{Name: "ao thun", Month: 6})
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update.Set == nil {
		t.Fatal("struct phải được wrap trong $set, Set đang nil")
	}
	if got, ok := update.Set["name"]; !ok || got != "ao thun" {
		t.Errorf("Set[name] = %v, muốn \"ao thun\" (theo bson tag)", got)
	}
	if _, ok := update.Set["month"]; !ok {
		t.Error("Set phải chứa trường month theo bson tag")
	}
}

func TestToUpdateData_PointerPassthrough(t *testing.T) {
	original := &UpdateData{
		Set:         map[string]interface{}{"totalRevenue": 600.0},
		SetOnInsert: map[string]interface{}{"createdAt": int64(1700000000)},
	}

	update, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update != original {
		t.Error("*UpdateData phải được trả về nguyên vẹn, không round-trip qua bson")
	}
}

func TestToUpdateData_ValuePassthrough(t *testing.T) {
	original := UpdateData{
		Set: map[string]interface{}{"numberOfOrders": int64(3)},
	}

	update, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update == nil {
		t.Fatal("ToUpdateData trả về nil")
	}
	if got := update.Set["numberOfOrders"]; got != int64(3) {
		t.Errorf("Set[numberOfOrders] = %v, muốn 3", got)
	}
	if update.SetOnInsert != nil {
		t.Errorf("SetOnInsert phải giữ nguyên nil, nhận: %v", update.SetOnInsert)
	}
}
