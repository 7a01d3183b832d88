// This file is part of rendercore.
//
// rendercore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rendercore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rendercore.  If not, see <https://www.gnu.org/licenses/>.

package gpu

// DataType is the type of a single element of a vertex buffer layout.
type DataType int

// List of valid DataType values.
const (
	DataNone DataType = iota
	DataBool
	DataInt
	DataFloat
	DataVec2
	DataVec3
	DataVec4
	DataMat2
	DataMat3
	DataMat4
)

var dataTypeNames = []string{"None", "Bool", "Int", "Float", "Vec2", "Vec3", "Vec4", "Mat2", "Mat3", "Mat4"}

func (d DataType) String() string {
	return name(dataTypeNames, int(d), "DataType")
}

// ParseDataType returns the DataType with the given name.
func ParseDataType(s string) (DataType, error) {
	i, err := parse(dataTypeNames, s, "data type")
	return DataType(i), err
}

// Size returns the size in bytes of the data type.
func (d DataType) Size() int {
	switch d {
	case DataBool:
		return 1
	case DataInt, DataFloat:
		return 4
	case DataVec2:
		return 4 * 2
	case DataVec3:
		return 4 * 3
	case DataVec4:
		return 4 * 4
	case DataMat2:
		return 4 * 2 * 2
	case DataMat3:
		return 4 * 3 * 3
	case DataMat4:
		return 4 * 4 * 4
	}
	return 0
}

// Components returns the number of components in the data type. Matrices
// count their columns.
func (d DataType) Components() int {
	switch d {
	case DataBool, DataInt, DataFloat:
		return 1
	case DataVec2, DataMat2:
		return 2
	case DataVec3, DataMat3:
		return 3
	case DataVec4, DataMat4:
		return 4
	}
	return 0
}
