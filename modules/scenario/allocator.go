package scenario

import (
	"math"

	"gigi-scenario-server/modules/common/model"
)

// TimeSlot - 장면 하나가 차지하는 영상 구간 (초 단위)
type TimeSlot struct {
	Start float64 `json:"start_time"`
	End   float64 `json:"end_time"`
}

// Duration - 구간 길이
func (s TimeSlot) Duration() float64 {
	return s.End - s.Start
}

// Allocate - 전체 영상 길이를 장면 수만큼 균등 분할
// 경계값은 소수 둘째 자리로 반올림하되 첫 경계 0, 마지막 경계 totalDuration 고정
// 반올림으로 단조성이 깨지면 반올림 없이 균등 분할로 폴백
func Allocate(sceneCount int, totalDuration float64) ([]TimeSlot, error) {
	if sceneCount <= 0 || totalDuration <= 0 {
		return nil, model.ErrInvalidDuration
	}

	per := totalDuration / float64(sceneCount)

	boundaries := make([]float64, sceneCount+1)
	boundaries[0] = 0
	boundaries[sceneCount] = totalDuration
	for i := 1; i < sceneCount; i++ {
		boundaries[i] = math.Round(per*float64(i)*100) / 100
	}

	for i := 0; i < sceneCount; i++ {
		if boundaries[i+1] <= boundaries[i] {
			// 장면 수가 극단적으로 많을 때만 발생. 반올림 포기
			for j := 1; j < sceneCount; j++ {
				boundaries[j] = per * float64(j)
			}
			break
		}
	}

	slots := make([]TimeSlot, sceneCount)
	for i := 0; i < sceneCount; i++ {
		slots[i] = TimeSlot{Start: boundaries[i], End: boundaries[i+1]}
	}
	return slots, nil
}
